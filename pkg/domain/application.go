package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationID uniquely identifies an application. It is also the file name
// of the application's allocator JSON in the GitHub registry.
type ApplicationID string

// NewApplicationID returns a random application identifier.
func NewApplicationID() ApplicationID {
	return ApplicationID(uuid.NewString())
}

// String implements fmt.Stringer.
func (id ApplicationID) String() string { return string(id) }

// Application is the write model of a tracked allocator application. It is
// never deleted, only moved through its lifecycle statuses.
type Application struct {
	// ID is the unique identifier of the application.
	ID ApplicationID `json:"id"`
	// Number is the public application number.
	Number int64 `json:"number"`

	// Name is the allocator name.
	Name string `json:"name"`
	// Organization is the organization applying.
	Organization string `json:"organization"`
	// Address is the on-chain address of the allocator.
	Address string `json:"address"`
	// Github is the GitHub handle of the applicant.
	Github string `json:"github"`
	// AllocationTrancheSchedule describes how datacap is released.
	AllocationTrancheSchedule string `json:"allocationTrancheSchedule"`

	// Status is the current lifecycle phase.
	Status ApplicationStatus `json:"status"`

	// PullRequestNumber references the registry pull request holding the
	// application's allocator file. Zero means no pull request is known yet.
	PullRequestNumber int `json:"pullRequestNumber"`
	// PullRequestURL is the web URL of the pull request.
	PullRequestURL string `json:"pullRequestUrl"`
	// IssueNumber references the GitHub issue the application was filed with.
	IssueNumber int `json:"issueNumber"`

	// Fingerprint is the revision of the allocator file last applied to this
	// application. Empty until the first successful edit.
	Fingerprint string `json:"fingerprint,omitempty"`

	// CreatedAt is the time when the application was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time of the last mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasPullRequest reports whether the application references a pull request.
func (a Application) HasPullRequest() bool {
	return a.PullRequestNumber > 0
}

// ApplicationDetails is the read projection of an application, maintained by
// event handlers and versioned for optimistic concurrency.
type ApplicationDetails struct {
	ID                        ApplicationID     `json:"id"`
	Number                    int64             `json:"number"`
	Name                      string            `json:"name"`
	Organization              string            `json:"organization"`
	Address                   string            `json:"address"`
	Github                    string            `json:"github"`
	AllocationTrancheSchedule string            `json:"allocationTrancheSchedule"`
	Datacap                   int64             `json:"datacap"`
	Status                    ApplicationStatus `json:"status"`
	PullRequestNumber         int               `json:"pullRequestNumber"`
	PullRequestURL            string            `json:"pullRequestUrl"`

	// Version increases by one on every write. A new projection is stored at version 1.
	Version int `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
