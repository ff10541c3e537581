package application

import (
	"filplus/pkg/domain"
)

// Command types handled by this package.
const (
	EditApplicationType       = "EditApplication"
	FetchAllocatorType        = "FetchAllocator"
	CreateApplicationType     = "CreateApplication"
	TransitionApplicationType = "TransitionApplication"
	LinkPullRequestType       = "LinkPullRequest"
	RequestRefreshType        = "RequestRefresh"
	SyncIssuesType            = "SyncIssues"
)

// CommandTypes lists every command type that must have a handler.
func CommandTypes() []string {
	return []string{
		EditApplicationType,
		FetchAllocatorType,
		CreateApplicationType,
		TransitionApplicationType,
		LinkPullRequestType,
		RequestRefreshType,
		SyncIssuesType,
	}
}

// EditApplication applies the content of an allocator file to an application.
type EditApplication struct {
	ApplicationID domain.ApplicationID
	File          domain.AllocatorFile
	// Fingerprint is the revision of File. Empty when unknown.
	Fingerprint string
}

func (EditApplication) CommandType() string { return EditApplicationType }

// FetchAllocator reads and parses the allocator file named JSONNumber.
type FetchAllocator struct {
	JSONNumber string
}

func (FetchAllocator) CommandType() string { return FetchAllocatorType }

// CreateApplication starts tracking a new application in KYC phase.
type CreateApplication struct {
	// ID is optional; a random ID is generated when empty.
	ID                        domain.ApplicationID
	Number                    int64
	Name                      string
	Organization              string
	Address                   string
	Github                    string
	AllocationTrancheSchedule string
	IssueNumber               int
	PullRequestNumber         int
	PullRequestURL            string
}

func (CreateApplication) CommandType() string { return CreateApplicationType }

// TransitionApplication moves an application to another lifecycle phase.
type TransitionApplication struct {
	ApplicationID domain.ApplicationID
	Status        domain.ApplicationStatus
}

func (TransitionApplication) CommandType() string { return TransitionApplicationType }

// LinkPullRequest attaches the registry pull request holding the
// application's allocator file.
type LinkPullRequest struct {
	ApplicationID domain.ApplicationID
	Number        int
	URL           string
}

func (LinkPullRequest) CommandType() string { return LinkPullRequestType }

// RequestRefresh schedules an out-of-band reconciliation of one application.
type RequestRefresh struct {
	ApplicationID domain.ApplicationID
}

func (RequestRefresh) CommandType() string { return RequestRefreshType }

// SyncIssues mirrors the application issues of the registry into the issue
// details projection.
type SyncIssues struct{}

func (SyncIssues) CommandType() string { return SyncIssuesType }
