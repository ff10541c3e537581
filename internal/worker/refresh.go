package worker

import (
	"context"
	"errors"
	"filplus/internal/application"
	"filplus/internal/reconciler"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// busySnooze is how long a refresh waits when its application is being
// reconciled by a tick.
const busySnooze = 5 * time.Second

// RefreshWorker is a River worker reconciling one application out of band.
//
// Outcomes map to River actions: a missing application cancels the job, an
// application already in flight snoozes it, read and dispatch failures are
// retried with River's backoff. Malformed allocator files are not retried,
// they only change through a new revision that the loop picks up anyway.
type RefreshWorker struct {
	river.WorkerDefaults[application.RefreshJobArgs]

	refresher Refresher
}

// NewRefreshWorker constructs a RefreshWorker using the provided refresher.
func NewRefreshWorker(refresher Refresher) *RefreshWorker {
	return &RefreshWorker{refresher: refresher}
}

// Work reconciles the application of the job.
func (w *RefreshWorker) Work(ctx context.Context, job *river.Job[application.RefreshJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("applicationID", job.Args.ApplicationID.String()))

	outcome, err := w.refresher.ReconcileOne(ctx, job.Args.ApplicationID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in refreshing application", logger.Kind(err), zap.Error(err))

		return fmt.Errorf("could not refresh application: %w", err)
	}

	switch outcome {
	case reconciler.OutcomeBusy:
		return river.JobSnooze(busySnooze) //nolint: wrapcheck
	case reconciler.OutcomeReadFailed, reconciler.OutcomeDispatchFailed, reconciler.OutcomePanicked:
		return serrors.With(serrors.ErrTransient, "application refresh ended with %s", outcome)
	}

	logger.Info(ctx, "application refreshed", zap.String("outcome", string(outcome)))

	return nil
}
