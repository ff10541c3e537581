// Package commandbus routes commands to exactly one handler each and forwards
// the events a handler emits to the event bus. Dispatch is synchronous and
// never retries: retry policy belongs to the caller.
package commandbus

import (
	"context"
	"filplus/internal/eventbus"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "filplus/internal/commandbus"

// Command is a request to change state.
type Command interface {
	CommandType() string
}

// Result is what a handler produces: data returned to the dispatcher and
// events to publish once the handler succeeded.
type Result struct {
	Data   any
	Events []eventbus.Event
}

// Handler executes commands of a single type.
type Handler interface {
	CommandType() string
	Handle(ctx context.Context, cmd Command) (Result, error)
}

type typedHandler[C Command] struct {
	commandType string
	fn          func(ctx context.Context, cmd C) (Result, error)
}

// NewHandler adapts fn into a Handler for commands of type C. C must be a
// value type whose zero value reports its command type.
func NewHandler[C Command](fn func(ctx context.Context, cmd C) (Result, error)) Handler {
	var zero C

	return &typedHandler[C]{commandType: zero.CommandType(), fn: fn}
}

func (h *typedHandler[C]) CommandType() string { return h.commandType }

func (h *typedHandler[C]) Handle(ctx context.Context, cmd Command) (Result, error) {
	c, ok := cmd.(C)
	if !ok {
		return Result{}, serrors.With(serrors.ErrInternal, "handler of %s cannot handle %T", h.commandType, cmd)
	}

	return h.fn(ctx, c)
}

// HandlerError reports a failed handler or a failed delivery of the events it
// emitted. Its message is the message of the cause, which stays reachable
// through errors.Is and errors.As.
type HandlerError struct {
	CommandType string
	Err         error
}

func (e *HandlerError) Error() string { return e.Err.Error() }

func (e *HandlerError) Unwrap() error { return e.Err }

// Publisher delivers events emitted by handlers.
type Publisher interface {
	Publish(ctx context.Context, causedBy string, events ...eventbus.Event) error
}

// Dispatcher executes commands.
//
//go:generate mockgen -package mockcommandbus -destination=mock/mockcommandbus.go filplus/internal/commandbus Dispatcher
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd Command) (any, error)
}

// Bus is the command bus. Register and Validate are meant to be called during
// startup; Dispatch is safe for concurrent use.
type Bus struct {
	mu        sync.RWMutex
	handlers  map[string]Handler
	publisher Publisher
	tracer    trace.Tracer
}

var _ Dispatcher = (*Bus)(nil)

// New returns a Bus publishing emitted events through publisher.
func New(publisher Publisher) *Bus {
	return &Bus{
		handlers:  map[string]Handler{},
		publisher: publisher,
		tracer:    otel.Tracer(tracerName),
	}
}

// Register binds h to its command type. A second handler for the same type
// is a configuration error.
func (b *Bus) Register(h Handler) error {
	if h.CommandType() == "" {
		return serrors.With(serrors.ErrConfiguration, "command handler must have a command type")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.handlers[h.CommandType()]; ok {
		return serrors.With(serrors.ErrConfiguration, "a handler for %s is already registered", h.CommandType())
	}
	b.handlers[h.CommandType()] = h

	return nil
}

// Validate checks that every given command type has a handler.
func (b *Bus) Validate(commandTypes ...string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var missing []string
	for _, t := range commandTypes {
		if _, ok := b.handlers[t]; !ok {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)

		return serrors.With(serrors.ErrConfiguration, "no handler registered for %s", strings.Join(missing, ", "))
	}

	return nil
}

// Dispatch runs the handler of cmd and publishes the events it emitted. A
// missing handler is a configuration error; a failing handler or delivery is
// returned as a *HandlerError.
func (b *Bus) Dispatch(ctx context.Context, cmd Command) (any, error) {
	commandType := cmd.CommandType()
	ctx, span := b.tracer.Start(ctx, "commandbus.Dispatch",
		trace.WithAttributes(attribute.String("command.type", commandType)))
	defer span.End()

	b.mu.RLock()
	h, ok := b.handlers[commandType]
	b.mu.RUnlock()
	if !ok {
		err := serrors.With(serrors.ErrConfiguration, "no handler registered for %s", commandType)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	result, err := handle(ctx, h, cmd)
	if err == nil && len(result.Events) > 0 {
		span.SetAttributes(attribute.Int("command.events", len(result.Events)))
		if pubErr := b.publisher.Publish(ctx, commandType, result.Events...); pubErr != nil {
			err = fmt.Errorf("could not deliver events: %w", pubErr)
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Debug(ctx, "command failed",
			zap.String("commandType", commandType),
			logger.Kind(err),
			zap.Error(err))

		return nil, &HandlerError{CommandType: commandType, Err: err}
	}

	return result.Data, nil
}

func handle(ctx context.Context, h Handler, cmd Command) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = serrors.With(serrors.ErrInternal, "handler panicked: %v", r)
		}
	}()

	return h.Handle(ctx, cmd)
}

// Send dispatches cmd and returns its result as R.
func Send[R any](ctx context.Context, d Dispatcher, cmd Command) (R, error) {
	var zero R

	data, err := d.Dispatch(ctx, cmd)
	if err != nil {
		return zero, err
	}
	if data == nil {
		return zero, nil
	}

	r, ok := data.(R)
	if !ok {
		return zero, serrors.With(serrors.ErrInternal, "%s returned %T, not %T", cmd.CommandType(), data, zero)
	}

	return r, nil
}
