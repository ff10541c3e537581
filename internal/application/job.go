package application

import (
	"filplus/pkg/domain"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RefreshJobArgs contains the arguments of a job reconciling one application
// out of band. The application ID is the unique key, so concurrent refresh
// requests of the same application collapse into one job.
type RefreshJobArgs struct {
	ApplicationID domain.ApplicationID `json:"applicationId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod defines the lookback window during which a job with the
	// same application is considered a duplicate.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register the refresh worker.
func (args RefreshJobArgs) Kind() string { return "RefreshApplicationJob" }

// InsertOpts returns the River options used when the job is enqueued.
func (args RefreshJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// SyncIssuesJobArgs is the argument of the periodic issue synchronization job.
type SyncIssuesJobArgs struct{}

// Kind returns the River job kind used to register the issue sync worker.
func (SyncIssuesJobArgs) Kind() string { return "SyncIssuesJob" }

// InsertOpts keeps a single synchronization queued or running at a time.
func (SyncIssuesJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
