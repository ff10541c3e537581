package application

import (
	"filplus/pkg/domain"
	"filplus/pkg/storage"
)

// Event types emitted by this package.
const (
	ApplicationCreatedType       = "ApplicationCreated"
	ApplicationEditedType        = "ApplicationEdited"
	ApplicationStatusChangedType = "ApplicationStatusChanged"
	PullRequestLinkedType        = "PullRequestLinked"
)

// EventTypes lists every event type that must have at least one handler.
func EventTypes() []string {
	return []string{
		ApplicationCreatedType,
		ApplicationEditedType,
		ApplicationStatusChangedType,
		PullRequestLinkedType,
	}
}

// ApplicationCreated is emitted once an application is stored.
type ApplicationCreated struct {
	Application domain.Application
}

func (ApplicationCreated) EventType() string { return ApplicationCreatedType }

// ApplicationChanges is the set of profile fields an edit carries. Nil fields
// are left untouched.
type ApplicationChanges struct {
	Number                    *int64  `json:"number,omitempty"`
	Name                      *string `json:"name,omitempty"`
	Organization              *string `json:"organization,omitempty"`
	Address                   *string `json:"address,omitempty"`
	Github                    *string `json:"github,omitempty"`
	AllocationTrancheSchedule *string `json:"allocationTrancheSchedule,omitempty"`
}

// ChangesFromFile maps the non-empty fields of an allocator file onto
// application fields.
func ChangesFromFile(f domain.AllocatorFile) ApplicationChanges {
	var c ApplicationChanges
	if f.ApplicationNumber != 0 {
		c.Number = &f.ApplicationNumber
	}
	c.Name = nonEmpty(f.Name)
	c.Organization = nonEmpty(f.Organization)
	c.Address = nonEmpty(f.Address)
	c.Github = nonEmpty(f.GithubHandle())
	c.AllocationTrancheSchedule = nonEmpty(f.TrancheSchedule())

	return c
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func (c ApplicationChanges) applicationUpdates() storage.ApplicationUpdates {
	return storage.ApplicationUpdates{
		Number:                    c.Number,
		Name:                      c.Name,
		Organization:              c.Organization,
		Address:                   c.Address,
		Github:                    c.Github,
		AllocationTrancheSchedule: c.AllocationTrancheSchedule,
	}
}

func (c ApplicationChanges) detailsUpdates() storage.ApplicationDetailsUpdates {
	return storage.ApplicationDetailsUpdates{
		Number:                    c.Number,
		Name:                      c.Name,
		Organization:              c.Organization,
		Address:                   c.Address,
		Github:                    c.Github,
		AllocationTrancheSchedule: c.AllocationTrancheSchedule,
	}
}

// ApplicationEdited is emitted for every successful edit, including edits
// that changed nothing, so replays re-converge the projections.
type ApplicationEdited struct {
	ApplicationID domain.ApplicationID
	Changes       ApplicationChanges
	Fingerprint   string
}

func (ApplicationEdited) EventType() string { return ApplicationEditedType }

// ApplicationStatusChanged is emitted when an application changes phase.
type ApplicationStatusChanged struct {
	ApplicationID domain.ApplicationID
	From          domain.ApplicationStatus
	To            domain.ApplicationStatus
}

func (ApplicationStatusChanged) EventType() string { return ApplicationStatusChangedType }

// PullRequestLinked is emitted when a pull request is attached to an application.
type PullRequestLinked struct {
	ApplicationID domain.ApplicationID
	Number        int
	URL           string
}

func (PullRequestLinked) EventType() string { return PullRequestLinkedType }
