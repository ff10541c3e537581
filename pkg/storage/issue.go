package storage

import (
	"context"
	"filplus/pkg/domain"
)

// IssueKeyField names the unique column a bulk upsert of issue details
// matches existing rows on.
type IssueKeyField string

const (
	IssueKeyGithubIssueID     IssueKeyField = "github_issue_id"
	IssueKeyGithubIssueNumber IssueKeyField = "github_issue_number"
)

// Valid reports whether f is a supported key field.
func (f IssueKeyField) Valid() bool {
	return f == IssueKeyGithubIssueID || f == IssueKeyGithubIssueNumber
}

// BulkResult reports the outcome of a bulk upsert.
type BulkResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// IssueDetailsUpdates describes a partial update of an issue details row.
// Only non-nil fields are updated.
type IssueDetailsUpdates struct {
	ApplicationID *domain.ApplicationID
	Title         *string
	State         *string
	Name          *string
	Address       *string
	Status        *domain.ApplicationStatus
}

// IssueDetailsStorage persists the issue details read projection.
type IssueDetailsStorage interface {
	// SaveIssueDetails inserts or replaces the row keyed by its GitHub issue id.
	SaveIssueDetails(ctx context.Context, issue domain.IssueDetails) (*domain.IssueDetails, error)
	// UpdateIssueDetails applies a partial update to the row with the given
	// GitHub issue number and returns it, or nil when absent.
	UpdateIssueDetails(ctx context.Context,
		issueNumber int,
		updates IssueDetailsUpdates) (*domain.IssueDetails, error)
	// UpdateIssueDetailsByApplicationID applies a partial update to the row
	// linked to the application and returns it, or nil when absent.
	UpdateIssueDetailsByApplicationID(ctx context.Context,
		ID domain.ApplicationID,
		updates IssueDetailsUpdates) (*domain.IssueDetails, error)
	// IssueDetailsByApplicationID returns the row linked to the application,
	// or nil when absent.
	IssueDetailsByApplicationID(ctx context.Context, ID domain.ApplicationID) (*domain.IssueDetails, error)
	// IssueDetailsPage returns one page of rows ordered by issue number,
	// newest first. A non-empty search matches name or address
	// case-insensitively.
	IssueDetailsPage(ctx context.Context, page, limit int, search string) (Page[domain.IssueDetails], error)
	// BulkUpsertIssueDetails inserts the given rows, updating existing rows
	// matched on field. Application links and statuses of existing rows are
	// preserved when the incoming row carries none.
	BulkUpsertIssueDetails(ctx context.Context,
		issues []domain.IssueDetails,
		field IssueKeyField) (BulkResult, error)
}
