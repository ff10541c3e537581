package worker_test

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/internal/worker"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"testing"
	"time"

	mockcommandbus "filplus/internal/commandbus/mock"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeSyncJob(id int64) *river.Job[application.SyncIssuesJobArgs] {
	return &river.Job[application.SyncIssuesJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   application.SyncIssuesJobArgs{},
	}
}

func TestSyncIssuesWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mockcommandbus.NewMockDispatcher(ctrl)
	w := worker.NewSyncIssuesWorker(dispatcher)

	dispatcher.EXPECT().Dispatch(gomock.Any(), application.SyncIssues{}).
		Return(storage.BulkResult{Inserted: 2, Updated: 3}, nil)

	require.NoError(t, w.Work(context.Background(), makeSyncJob(1)))
}

func TestSyncIssuesWorker_Work_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatcher := mockcommandbus.NewMockDispatcher(ctrl)
	w := worker.NewSyncIssuesWorker(dispatcher)

	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, &commandbus.HandlerError{
		CommandType: application.SyncIssuesType,
		Err:         serrors.With(serrors.ErrRateLimited, "github rate limit exceeded"),
	})

	err := w.Work(context.Background(), makeSyncJob(2))
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestPeriodicJobs(t *testing.T) {
	require.Empty(t, worker.PeriodicJobs(worker.Options{}))
	require.Len(t, worker.PeriodicJobs(worker.Options{IssueSyncInterval: time.Minute}), 1)
}
