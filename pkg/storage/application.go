package storage

import (
	"context"
	"filplus/pkg/domain"
)

// ApplicationUpdates describes a set of optional fields that can be applied to
// an existing application. Only non-nil fields are updated.
type ApplicationUpdates struct {
	Number                    *int64
	Name                      *string
	Organization              *string
	Address                   *string
	Github                    *string
	AllocationTrancheSchedule *string
	Status                    *domain.ApplicationStatus
	PullRequestNumber         *int
	PullRequestURL            *string
	IssueNumber               *int
	// Fingerprint, when provided, records the allocator file revision the
	// update was derived from.
	Fingerprint *string
	// ExpectedStatus, when provided, makes the update conditional on the
	// stored status. It is not written.
	ExpectedStatus *domain.ApplicationStatus
}

// Empty reports whether no field is set.
func (u ApplicationUpdates) Empty() bool {
	return u == ApplicationUpdates{}
}

// ApplicationStorage persists the application write model.
type ApplicationStorage interface {
	// ListApplications returns every tracked application ordered by creation time.
	ListApplications(ctx context.Context) ([]domain.Application, error)
	// ApplicationByID returns the application with the given ID, or nil when it
	// does not exist.
	ApplicationByID(ctx context.Context, ID domain.ApplicationID) (*domain.Application, error)
	// StoreApplication inserts a new application and returns the stored row.
	// It returns an ErrConflict error when the ID is already taken.
	StoreApplication(ctx context.Context, app domain.Application) (*domain.Application, error)
	// UpdateApplication applies the non-nil fields of updates and returns the
	// updated row, or nil when the application does not exist. When
	// updates.ExpectedStatus is set and the stored status differs, it returns
	// an ErrConflict error and changes nothing.
	UpdateApplication(ctx context.Context,
		ID domain.ApplicationID,
		updates ApplicationUpdates) (*domain.Application, error)
}
