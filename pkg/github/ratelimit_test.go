package github_test

import (
	"context"
	"filplus/pkg/github"
	"filplus/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiter_FirstRequestRunsAlone(t *testing.T) {
	l := github.NewLimiter(50 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, l.Reserve(ctx))

	// a second request must wait for the first one to report the real window
	err := l.Reserve(ctx)
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	_, ok := l.Status()
	require.False(t, ok)

	l.Release(ctx, github.RateLimitStatus{Limit: 5000, Remaining: 4999, ResetAt: time.Now().Add(time.Hour)})

	status, ok := l.Status()
	require.True(t, ok)
	require.Equal(t, 4999, status.Remaining)

	// budget is now large enough for concurrent requests
	require.NoError(t, l.Reserve(ctx))
	require.NoError(t, l.Reserve(ctx))
}

func TestLimiter_BlocksUntilRelease(t *testing.T) {
	l := github.NewLimiter(3 * time.Second)
	ctx := context.Background()

	require.NoError(t, l.Reserve(ctx))
	l.Release(ctx, github.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)})

	require.NoError(t, l.Reserve(ctx))

	reserved := make(chan error, 1)
	go func() { reserved <- l.Reserve(ctx) }()

	select {
	case <-reserved:
		t.Fatal("second reservation succeeded while the budget was in flight")
	case <-time.After(100 * time.Millisecond):
	}

	l.Release(ctx, github.RateLimitStatus{Limit: 1, Remaining: 1, ResetAt: time.Now().Add(time.Minute)})

	select {
	case err := <-reserved:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken by release")
	}
}

func TestLimiter_WaitsForReset(t *testing.T) {
	l := github.NewLimiter(3 * time.Second)
	ctx := context.Background()

	require.NoError(t, l.Reserve(ctx))
	resetAt := time.Now().Add(300 * time.Millisecond)
	l.Release(ctx, github.RateLimitStatus{Limit: 10, Remaining: 0, ResetAt: resetAt})

	start := time.Now()
	require.NoError(t, l.Reserve(ctx))
	require.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
}

func TestLimiter_KeepsLowestRemainingInWindow(t *testing.T) {
	l := github.NewLimiter(time.Second)
	ctx := context.Background()
	resetAt := time.Now().Add(time.Hour)

	require.NoError(t, l.Reserve(ctx))
	l.Release(ctx, github.RateLimitStatus{Limit: 100, Remaining: 50, ResetAt: resetAt})
	require.NoError(t, l.Reserve(ctx))
	require.NoError(t, l.Reserve(ctx))

	l.Release(ctx, github.RateLimitStatus{Limit: 100, Remaining: 40, ResetAt: resetAt})
	l.Release(ctx, github.RateLimitStatus{Limit: 100, Remaining: 45, ResetAt: resetAt})

	status, ok := l.Status()
	require.True(t, ok)
	require.Equal(t, 40, status.Remaining)

	// a new window is always adopted
	require.NoError(t, l.Reserve(ctx))
	newReset := resetAt.Add(time.Hour)
	l.Release(ctx, github.RateLimitStatus{Limit: 100, Remaining: 99, ResetAt: newReset})
	status, _ = l.Status()
	require.Equal(t, 99, status.Remaining)
	require.True(t, status.ResetAt.Equal(newReset))
}

func TestLimiter_ContextCanceled(t *testing.T) {
	l := github.NewLimiter(time.Minute)
	require.NoError(t, l.Reserve(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Reserve(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
