package serrors_test

import (
	"errors"
	"filplus/pkg/serrors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrTransient,
		serrors.ErrParse,
		serrors.ErrConfiguration,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection reset")

	e1 := serrors.With(serrors.ErrNotFound, "application %s not found", "A1")
	require.Equal(t, "application A1 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrTransient, base, "reading pull request")
	require.Equal(t, "reading pull request: connection reset", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())

	e4 := serrors.Opaque(serrors.ErrInternal, base, "Failed to fetch JSON number")
	require.Equal(t, "Failed to fetch JSON number", e4.Error())
	require.ErrorIs(t, e4, base, "opaque errors keep their cause reachable")
	require.Equal(t, base, e4.Cause())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestIsMatchesNestedKinds(t *testing.T) {
	inner := serrors.With(serrors.ErrNotFound, "file not found")
	outer := serrors.Opaque(serrors.NewKind("ALLOCATOR_NOT_FOUND"), inner, "allocator missing")

	require.ErrorIs(t, outer, serrors.ErrNotFound)
	require.ErrorIs(t, fmt.Errorf("dispatch: %w", outer), serrors.ErrNotFound)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrParse, serrors.KindOf(serrors.With(serrors.ErrParse, "bad json")))
	require.Equal(t, serrors.ErrNotFound, serrors.KindOf(serrors.ErrNotFound))

	// the outermost kind wins
	wrapped := fmt.Errorf("tick: %w",
		serrors.Wrap(serrors.ErrTransient, serrors.With(serrors.ErrNotFound, "gone"), "read"))
	require.Equal(t, serrors.ErrTransient, serrors.KindOf(wrapped))
}
