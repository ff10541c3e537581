// Package worker runs the River workers of the service: on-demand application
// refreshes and the periodic issue synchronization.
package worker

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/internal/config"
	"filplus/pkg/logger"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// IssueSyncInterval is the period of the issue synchronization job. Zero
	// disables it.
	IssueSyncInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:        cfg.Worker.MaxWorkers,
		IssueSyncInterval: cfg.Worker.IssueSyncInterval,
	}
}

// Deps are the collaborators of the workers.
type Deps struct {
	Refresher  Refresher
	Dispatcher commandbus.Dispatcher
}

// NewWorkers registers every worker of the service.
func NewWorkers(deps Deps) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRefreshWorker(deps.Refresher))
	river.AddWorker(workers, NewSyncIssuesWorker(deps.Dispatcher))

	return workers
}

// PeriodicJobs returns the periodic jobs of the service.
func PeriodicJobs(opts Options) []*river.PeriodicJob {
	if opts.IssueSyncInterval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(opts.IssueSyncInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return application.SyncIssuesJobArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers:      NewWorkers(deps),
		PeriodicJobs: PeriodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
