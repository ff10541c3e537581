// Package reconciler mirrors allocator files kept in GitHub pull requests into
// tracked applications. Each tick reads every application's file, detects
// changes through a fingerprint cache and dispatches EditApplication for the
// changed ones. Failures are contained per application and retried on the
// next tick, as the cache only advances after a successful dispatch.
package reconciler

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/internal/config"
	"filplus/pkg/domain"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Outcome is the result of reconciling one application.
type Outcome string

const (
	// OutcomeAbsent means the application has no pull request to read from.
	OutcomeAbsent Outcome = "absent"
	// OutcomeUnchanged means the allocator file was already applied.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeDispatched means a changed allocator file was applied.
	OutcomeDispatched Outcome = "dispatched"
	// OutcomeReadFailed means the allocator file could not be read.
	OutcomeReadFailed Outcome = "read_failed"
	// OutcomeParseFailed means the allocator file is malformed.
	OutcomeParseFailed Outcome = "parse_failed"
	// OutcomeDispatchFailed means EditApplication failed.
	OutcomeDispatchFailed Outcome = "dispatch_failed"
	// OutcomeBusy means the application is being reconciled by another caller.
	OutcomeBusy Outcome = "busy"
	// OutcomePanicked means reconciling the application panicked.
	OutcomePanicked Outcome = "panicked"
)

// TickResult summarizes one tick.
type TickResult struct {
	// Skipped is set when the tick did not run because the previous one was
	// still in progress.
	Skipped bool
	// Err is set when the applications could not be listed.
	Err      error
	Outcomes map[Outcome]int
	Duration time.Duration
}

// Options configure the reconciliation loop.
type Options struct {
	// Interval is the time between two ticks.
	Interval time.Duration
	// Concurrency is the number of applications reconciled in parallel.
	Concurrency int
	// CacheCapacity bounds the number of cached fingerprints.
	CacheCapacity int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Interval:      cfg.Reconciler.Interval,
		Concurrency:   cfg.Reconciler.Concurrency,
		CacheCapacity: cfg.Reconciler.CacheCapacity,
	}
}

// ApplicationLister lists tracked applications.
type ApplicationLister interface {
	ListApplications(ctx context.Context) ([]domain.Application, error)
	ApplicationByID(ctx context.Context, ID domain.ApplicationID) (*domain.Application, error)
}

// Reconciler is the reconciliation loop. It is the only writer of its cache.
type Reconciler struct {
	options    Options
	storage    ApplicationLister
	reader     Reader
	dispatcher commandbus.Dispatcher
	cache      *Cache
	metrics    *Metrics

	running atomic.Bool

	// mu protects inFlight.
	mu       sync.Mutex
	inFlight map[domain.ApplicationID]struct{}
}

// New creates a Reconciler. metrics may be nil.
func New(storage ApplicationLister,
	reader Reader,
	dispatcher commandbus.Dispatcher,
	metrics *Metrics,
	options Options) *Reconciler {
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}

	return &Reconciler{
		options:    options,
		storage:    storage,
		reader:     reader,
		dispatcher: dispatcher,
		cache:      NewCache(options.CacheCapacity),
		metrics:    metrics,
		inFlight:   make(map[domain.ApplicationID]struct{}),
	}
}

// Cache returns the fingerprint cache of the loop.
func (r *Reconciler) Cache() *Cache { return r.cache }

// Start runs a tick immediately and then once per interval until ctx is done.
// It returns after the in-flight tick has finished.
func (r *Reconciler) Start(ctx context.Context) {
	logger.Info(ctx, "starting reconciliation loop",
		zap.Duration("interval", r.options.Interval),
		zap.Int("concurrency", r.options.Concurrency))

	ticker := time.NewTicker(r.options.Interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Go(func() { r.Tick(ctx) })
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "stopping reconciliation loop")

			return
		case <-ticker.C:
			wg.Go(func() { r.Tick(ctx) })
		}
	}
}

// Tick reconciles every tracked application once. A tick started while
// another one is running is skipped.
func (r *Reconciler) Tick(ctx context.Context) (result TickResult) {
	if !r.running.CompareAndSwap(false, true) {
		logger.Warn(ctx, "previous reconciliation tick still running, skipping tick")
		r.metrics.RecordTick(ctx, true, 0)

		return TickResult{Skipped: true}
	}
	defer r.running.Store(false)

	start := time.Now()
	result = TickResult{Outcomes: map[Outcome]int{}}
	defer func() {
		result.Duration = time.Since(start)
		r.metrics.RecordTick(ctx, false, result.Duration)
	}()

	apps, err := r.listApplications(ctx)
	if err != nil {
		logger.Error(ctx, "could not list applications, waiting for next tick",
			logger.Kind(err),
			zap.Error(err))
		result.Err = err

		return result
	}

	ids := make([]domain.ApplicationID, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.ID)
	}
	if dropped := r.cache.Retain(ids); dropped > 0 {
		logger.Debug(ctx, "pruned fingerprints of untracked applications", zap.Int("dropped", dropped))
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.options.Concurrency)
	for _, app := range apps {
		g.Go(func() error {
			outcome := r.reconcile(ctx, app)

			mu.Lock()
			result.Outcomes[outcome]++
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	logger.Info(ctx, "reconciliation tick finished",
		zap.Int("applications", len(apps)),
		zap.Any("outcomes", result.Outcomes),
		zap.Duration("duration", time.Since(start)))

	return result
}

// ReconcileOne reconciles a single application outside of the ticks. It
// returns an ErrNotFound error when the application does not exist.
func (r *Reconciler) ReconcileOne(ctx context.Context, id domain.ApplicationID) (Outcome, error) {
	app, err := r.storage.ApplicationByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("could not get application: %w", err)
	}
	if app == nil {
		return "", serrors.With(serrors.ErrNotFound, "application %s not found", id)
	}

	return r.reconcile(ctx, *app), nil
}

func (r *Reconciler) listApplications(ctx context.Context) (apps []domain.Application, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = serrors.With(serrors.ErrInternal, "listing applications panicked: %v", rec)
		}
	}()

	return r.storage.ListApplications(ctx)
}

func (r *Reconciler) acquire(id domain.ApplicationID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.inFlight[id]; ok {
		return false
	}
	r.inFlight[id] = struct{}{}

	return true
}

func (r *Reconciler) release(id domain.ApplicationID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.inFlight, id)
}

// reconcile runs read, detect, parse and dispatch for one application. It
// never panics and never returns an error: every failure is logged with the
// application and the error kind and left for the next tick.
func (r *Reconciler) reconcile(ctx context.Context, app domain.Application) (outcome Outcome) {
	ctx = logger.WithFields(ctx, zap.String("applicationID", app.ID.String()))

	if !r.acquire(app.ID) {
		logger.Debug(ctx, "application is already being reconciled")

		return OutcomeBusy
	}
	defer r.release(app.ID)

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err := serrors.With(serrors.ErrInternal, "reconciliation panicked: %v", rec)
			logger.Error(ctx, "could not reconcile application", logger.Kind(err), zap.Error(err))
			outcome = OutcomePanicked
		}
		r.metrics.RecordItem(ctx, outcome, time.Since(start))
	}()

	rev, ok, err := r.reader.Read(ctx, app)
	if err != nil {
		logger.Warn(ctx, "could not read allocator file", logger.Kind(err), zap.Error(err))

		return OutcomeReadFailed
	}
	if !ok {
		logger.Info(ctx, "application has no pull request, skipping")

		return OutcomeAbsent
	}

	cached, known := r.cache.Get(app.ID)
	if Detect(cached, known, rev.Fingerprint) == Unchanged {
		return OutcomeUnchanged
	}

	ctx = logger.WithFields(ctx, zap.String("fingerprint", rev.Fingerprint))

	file, err := domain.ParseAllocatorFile(rev.Content)
	if err != nil {
		logger.Warn(ctx, "could not parse allocator file", logger.Kind(err), zap.Error(err))

		return OutcomeParseFailed
	}

	if _, err := r.dispatcher.Dispatch(ctx, application.EditApplication{
		ApplicationID: app.ID,
		File:          *file,
		Fingerprint:   rev.Fingerprint,
	}); err != nil {
		logger.Error(ctx, "could not apply allocator file", logger.Kind(err), zap.Error(err))

		return OutcomeDispatchFailed
	}

	if !r.cache.Set(app.ID, rev.Fingerprint) {
		logger.Warn(ctx, "fingerprint cache is full, change will be detected again",
			zap.Int("capacity", r.cache.Capacity()))
	}
	logger.Info(ctx, "allocator file applied")

	return OutcomeDispatched
}
