// Package github defines the read-only view of GitHub the service depends on:
// pull requests and files of the allocator registry, and the issues
// applications are filed with. Implementations live in subpackages.
package github

import (
	"context"
	"time"
)

// RateLimitStatus describes the API rate-limit window reported by GitHub.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of requests allowed in the window.
	Remaining int       // Remaining is the number of requests left in the window.
	ResetAt   time.Time // ResetAt is when the window resets.
}

// PullRequest is the subset of a pull request needed to locate its files.
type PullRequest struct {
	Number  int
	State   string
	URL     string
	HeadRef string // HeadRef is the branch holding the proposed changes.
	HeadSHA string
}

// File is a single file at a given ref.
type File struct {
	Path    string
	SHA     string // SHA is the blob sha, used as the content fingerprint.
	Content []byte
}

// Issue is a GitHub issue. Pull requests returned by the issues API are
// filtered out by implementations.
type Issue struct {
	ID        int64
	Number    int
	Title     string
	Body      string
	State     string
	User      string
	Labels    []string
	CreatedAt time.Time
	ClosedAt  time.Time
}

// IssueListOptions filters ListIssues.
type IssueListOptions struct {
	// State is "open", "closed" or "all". Empty means "all".
	State string
	// Label restricts results to issues carrying this label. Empty means any.
	Label string
}

// Client reads from the GitHub REST API.
//
// Errors carry serrors kinds: ErrNotFound for missing resources,
// ErrRateLimited when the rate limit is exhausted, ErrUnauthorized for bad
// credentials and ErrTransient for network failures and 5xx responses.
//
//go:generate mockgen -package mockgithub -source=interface.go -destination=mock/mockgithub.go *
type Client interface {
	// GetPullRequest returns the pull request with the given number.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequest, error)
	// GetFile returns the file at path on ref. An empty ref means the default branch.
	GetFile(ctx context.Context, owner, repo, path, ref string) (*File, error)
	// ListIssues returns every issue matching opts, following pagination.
	ListIssues(ctx context.Context, owner, repo string, opts IssueListOptions) ([]Issue, error)
}
