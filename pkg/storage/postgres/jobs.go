package postgres

import (
	"context"
	"filplus/pkg/logger"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob enqueues a River job. On a transactional handle the job is inserted
// in the transaction and becomes visible on commit. It returns false when a
// unique job with the same arguments is already queued.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, fmt.Errorf("could not add %s job: storage has no job client", args.Kind())
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.tx(); ok {
		res, err = p.jobs.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = p.jobs.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	logger.Debug(ctx, "job added",
		zap.String("kind", args.Kind()),
		zap.Int64("jobID", res.Job.ID),
		zap.Bool("duplicate", res.UniqueSkippedAsDuplicate))

	return !res.UniqueSkippedAsDuplicate, nil
}
