// Package application implements the command handlers and event projectors of
// allocator applications and wires them onto the command and event buses.
package application

import (
	"filplus/internal/config"
	"time"
)

// Options configure the handlers and projectors. They are typically derived
// from application configuration.
type Options struct {
	// Owner and Repo locate the allocator registry on GitHub.
	Owner string
	Repo  string
	// AllocatorsDir is the registry directory holding allocator JSON files.
	AllocatorsDir string
	// IssueLabel restricts issue synchronization to labelled issues.
	IssueLabel string
	// InitialDatacap is the datacap of a newly projected application.
	InitialDatacap int64
	// MaxAttempts is the maximum number of attempts of a refresh job.
	MaxAttempts int
	// UniquePeriod deduplicates refresh jobs of the same application.
	UniquePeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Owner:          cfg.GitHub.Owner,
		Repo:           cfg.GitHub.Repo,
		AllocatorsDir:  cfg.GitHub.AllocatorsDir,
		IssueLabel:     cfg.Worker.IssueLabel,
		InitialDatacap: cfg.Application.InitialDatacap,
		MaxAttempts:    cfg.Worker.MaxAttempts,
		UniquePeriod:   cfg.Worker.UniquePeriod,
	}
}

// AllocatorPath returns the registry path of the allocator file named name.
func (o Options) AllocatorPath(name string) string {
	return o.AllocatorsDir + "/" + name + ".json"
}
