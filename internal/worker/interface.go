package worker

import (
	"context"
	"filplus/internal/reconciler"
	"filplus/pkg/domain"
)

// Refresher reconciles a single application on demand.
//
//go:generate mockgen -package mockworker -source=interface.go -destination=mock/mockworker.go *
type Refresher interface {
	ReconcileOne(ctx context.Context, id domain.ApplicationID) (reconciler.Outcome, error)
}
