package github

import (
	"context"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Limiter is a cooperative client-side rate limiter shared by every request a
// client makes. It never lets the number of in-flight requests exceed the
// budget GitHub last reported, while allowing full concurrency when budget
// remains.
//
// The effective budget is computed as:
//
//	remaining := last.Remaining
//	if now > last.ResetAt { remaining = last.Limit }
//
// A request may start when remaining - inFlight > 0. Otherwise Reserve waits
// until the window resets or another request finishes, for at most maxWait.
// Waiting longer than maxWait fails fast with serrors.ErrRateLimited so
// callers treat the exhausted window as a transient failure and retry later.
//
// Release merges the status reported by a finished request: a new ResetAt is
// always adopted, otherwise Remaining is only ever lowered, so concurrent
// responses that observed slightly different budgets never make the view
// optimistic.
//
// Before any response has been seen, the limiter allows exactly one request
// through (Limit=1, Remaining=1, far-future ResetAt) to learn the real window.
type Limiter struct {
	maxWait time.Duration

	// mu protects the fields below.
	mu       sync.Mutex
	inFlight int
	last     *RateLimitStatus
	observed bool
	// released is closed and replaced every time a request finishes, waking all
	// waiters so they re-evaluate the budget.
	released chan struct{}
}

// NewLimiter returns a Limiter that waits at most maxWait for budget.
func NewLimiter(maxWait time.Duration) *Limiter {
	return &Limiter{
		maxWait:  maxWait,
		released: make(chan struct{}),
	}
}

// Reserve takes one unit of budget, waiting for it if necessary. It returns an
// ErrRateLimited error when no budget frees up within maxWait, and ctx's error
// when ctx is done first.
func (l *Limiter) Reserve(ctx context.Context) error {
	deadline := time.NewTimer(l.maxWait)
	defer deadline.Stop()

	for {
		l.mu.Lock()
		if l.last == nil {
			l.last = &RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := l.last.Remaining
		if time.Now().After(l.last.ResetAt) {
			remaining = l.last.Limit
		}

		if remaining-l.inFlight > 0 {
			l.inFlight++
			l.mu.Unlock()

			return nil
		}

		resetAt := l.last.ResetAt
		released := l.released
		inFlight := l.inFlight
		l.mu.Unlock()

		logger.Debug(ctx, "waiting for github rate limit budget",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		reset := time.NewTimer(time.Until(resetAt))
		select {
		case <-ctx.Done():
			reset.Stop()

			return fmt.Errorf("could not reserve github rate limit: %w", ctx.Err())
		case <-deadline.C:
			reset.Stop()

			return serrors.With(serrors.ErrRateLimited, "github rate limit exhausted until %s",
				resetAt.UTC().Format(time.RFC3339))
		case <-released:
		case <-reset.C:
		}
		reset.Stop()
	}
}

// Release returns the unit taken by Reserve and merges the rate-limit status
// observed on the response. A zero status (no headers) leaves the view as is.
func (l *Limiter) Release(ctx context.Context, status RateLimitStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight > 0 {
		l.inFlight--
	}
	close(l.released)
	l.released = make(chan struct{})

	if status.ResetAt.IsZero() {
		return
	}

	adopt := !l.observed ||
		!l.last.ResetAt.Equal(status.ResetAt) ||
		status.Remaining < l.last.Remaining
	if !adopt {
		return
	}

	l.last = &status
	l.observed = true
	logger.Debug(ctx, "github rate limit updated",
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", l.inFlight))
}

// Status returns the last observed rate-limit status, if any response has
// been seen yet.
func (l *Limiter) Status() (RateLimitStatus, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.observed {
		return RateLimitStatus{}, false
	}

	return *l.last, true
}
