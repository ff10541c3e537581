// Package serrors implements semantic errors: a small set of kinds (sentinels)
// that callers match with errors.Is, attached to an optional cause and a
// human-readable message. Kinds drive retry decisions in the reconciler,
// river job outcomes and HTTP status codes.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is the unexported implementation of Kind. Values are compared by name.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and can be used with errors.Is/As through the
// Error wrapper. The name doubles as the error code exposed by the HTTP API.
func NewKind(name string) Kind { return kind{s: name} }

// Default kinds shared by every layer. Packages with their own vocabulary
// (for example the command handlers) declare further kinds with NewKind.
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid credentials, locally or upstream.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict (duplicate entity, version mismatch, invalid transition).
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates too many requests against an upstream API.
	ErrRateLimited = NewKind("RATE_LIMITED")

	// ErrTransient marks an external failure that is expected to heal on its own
	// (network errors, 5xx responses). Work failing with it is retried later.
	ErrTransient = NewKind("TRANSIENT")
	// ErrParse indicates external content did not match the expected schema.
	ErrParse = NewKind("PARSE")
	// ErrConfiguration indicates a wiring defect detected at startup, such as a
	// duplicate or missing handler registration. It is fatal.
	ErrConfiguration = NewKind("CONFIGURATION")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional message. It fully supports errors.Is,
// errors.As and unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) matches when target matches either the kind
//     sentinel or the wrapped error chain.
//   - errors.As(err, target) succeeds for either the kind sentinel or the
//     wrapped error chain.
//   - Wrapping an *Error in another *Error keeps both kinds matchable; KindOf
//     reports the outermost one.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>" (or "<msg>" when opaque)
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind   Kind  // semantic kind sentinel
	err    error // wrapped cause (optional)
	msg    string
	opaque bool // leave err out of Error()
}

// With constructs a new semantic error with the given kind and a
// human-readable message. Use Wrap to also attach a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause and adds a message in front of it.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Opaque is like Wrap but the cause is left out of Error(). The cause is still
// reachable through errors.Is/As and Cause. Use it for messages that are part
// of a public contract and must not change with the underlying failure.
func Opaque(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...), opaque: true}
}

// KindOnly creates a semantic error carrying only the kind, without message
// or cause. Its Error() is the kind's name.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil && !e.opaque:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error, letting errors.Unwrap, errors.Is and
// errors.As traverse the cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel first, then against the wrapped
// error chain. A nil *Error only matches a nil target.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind sentinel or the wrapped
// error chain. Asserting into a Kind yields this error's own kind.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error, without the cause.
// The HTTP API returns it to clients.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost kind found in err's chain, or ErrInternal when
// err carries no kind. It returns nil for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return nil
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
