package worker

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/pkg/logger"
	"filplus/pkg/storage"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SyncIssuesWorker is a River worker mirroring the registry's application
// issues into the issue details projection. It runs as a periodic job.
type SyncIssuesWorker struct {
	river.WorkerDefaults[application.SyncIssuesJobArgs]

	dispatcher commandbus.Dispatcher
}

// NewSyncIssuesWorker constructs a SyncIssuesWorker dispatching through dispatcher.
func NewSyncIssuesWorker(dispatcher commandbus.Dispatcher) *SyncIssuesWorker {
	return &SyncIssuesWorker{dispatcher: dispatcher}
}

// Work dispatches a SyncIssues command.
func (w *SyncIssuesWorker) Work(ctx context.Context, job *river.Job[application.SyncIssuesJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	result, err := commandbus.Send[storage.BulkResult](ctx, w.dispatcher, application.SyncIssues{})
	if err != nil {
		logger.Error(ctx, "error in synchronizing issues", logger.Kind(err), zap.Error(err))

		return fmt.Errorf("could not synchronize issues: %w", err)
	}

	logger.Info(ctx, "issues synchronized successfully",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated))

	return nil
}
