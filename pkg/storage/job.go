package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the river queue backing the
// storage. Inside a transaction the job only becomes visible on commit.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It returns false when
	// the job was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
