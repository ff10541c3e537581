package storage

import (
	"context"
	"filplus/pkg/domain"
)

// Pagination describes the position of a page within a result set.
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// NewPagination computes the pagination block for a page of at most limit
// items out of total.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

// Offset returns the number of rows to skip to reach page, which starts at 1.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * limit
}

// Page is a single page of results.
type Page[T any] struct {
	Results    []T        `json:"results"`
	Pagination Pagination `json:"pagination"`
}

// ApplicationDetailsUpdates describes a partial update of the application
// details projection. Only non-nil fields are updated; the version is always
// incremented.
type ApplicationDetailsUpdates struct {
	Number                    *int64
	Name                      *string
	Organization              *string
	Address                   *string
	Github                    *string
	AllocationTrancheSchedule *string
	Datacap                   *int64
	Status                    *domain.ApplicationStatus
	PullRequestNumber         *int
	PullRequestURL            *string
}

// Empty reports whether no field is set.
func (u ApplicationDetailsUpdates) Empty() bool {
	return u == ApplicationDetailsUpdates{}
}

// ApplicationDetailsStorage persists the application details read projection.
type ApplicationDetailsStorage interface {
	// SaveApplicationDetails writes a full projection using optimistic
	// concurrency. An expectedVersion of 0 inserts a new row; any other value
	// replaces the row only if its stored version equals expectedVersion. On
	// mismatch an ErrConflict error is returned. The stored row is returned.
	SaveApplicationDetails(ctx context.Context,
		details domain.ApplicationDetails,
		expectedVersion int) (*domain.ApplicationDetails, error)
	// UpdateApplicationDetails applies a partial update and returns the updated
	// row, or nil when no projection exists for ID.
	UpdateApplicationDetails(ctx context.Context,
		ID domain.ApplicationID,
		updates ApplicationDetailsUpdates) (*domain.ApplicationDetails, error)
	// ApplicationDetailsByID returns the projection for ID, or nil when absent.
	ApplicationDetailsByID(ctx context.Context, ID domain.ApplicationID) (*domain.ApplicationDetails, error)
	// ApplicationDetailsPage returns one page of projections ordered by
	// creation time. A non-empty search matches name or address
	// case-insensitively.
	ApplicationDetailsPage(ctx context.Context,
		page, limit int,
		search string) (Page[domain.ApplicationDetails], error)
}
