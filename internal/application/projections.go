package application

import (
	"context"
	"errors"
	"filplus/internal/eventbus"
	"filplus/pkg/domain"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"fmt"

	"go.uber.org/zap"
)

// Projections keeps the read models in sync with the events of the write
// model. Every projector is idempotent.
type Projections struct {
	options Options
	storage storage.Storage
}

// NewProjections creates the event projectors backed by the given storage.
func NewProjections(storage storage.Storage, options Options) *Projections {
	return &Projections{
		options: options,
		storage: storage,
	}
}

// ApplicationCreated builds the initial application details at expected
// version 0. A replay finds the projection already there and does nothing.
func (p *Projections) ApplicationCreated(ctx context.Context, e ApplicationCreated, _ eventbus.Envelope) error {
	details := p.newDetails(e.Application)
	details.Status = domain.ApplicationStatusKYC

	_, err := p.storage.SaveApplicationDetails(ctx, details, 0)
	if errors.Is(err, serrors.ErrConflict) {
		logger.Debug(ctx, "application details already projected", zap.Stringer("applicationID", details.ID))

		return nil
	}
	if err != nil {
		return fmt.Errorf("could not save application details: %w", err)
	}

	return nil
}

func (p *Projections) newDetails(app domain.Application) domain.ApplicationDetails {
	return domain.ApplicationDetails{
		ID:                        app.ID,
		Number:                    app.Number,
		Name:                      app.Name,
		Organization:              app.Organization,
		Address:                   app.Address,
		Github:                    app.Github,
		AllocationTrancheSchedule: app.AllocationTrancheSchedule,
		Datacap:                   p.options.InitialDatacap,
		Status:                    app.Status,
		PullRequestNumber:         app.PullRequestNumber,
		PullRequestURL:            app.PullRequestURL,
	}
}

// updateDetails applies updates to the application details. When the
// projection is missing, because projecting ApplicationCreated failed after
// the application was stored, it is rebuilt from the write model, which
// already carries the change.
func (p *Projections) updateDetails(ctx context.Context,
	id domain.ApplicationID,
	updates storage.ApplicationDetailsUpdates) error {
	details, err := p.storage.UpdateApplicationDetails(ctx, id, updates)
	if err != nil {
		return fmt.Errorf("could not update application details: %w", err)
	}
	if details != nil {
		return nil
	}

	app, err := p.storage.ApplicationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not read application: %w", err)
	}
	if app == nil {
		return serrors.With(serrors.ErrNotFound, "application %s not found", id)
	}

	logger.Warn(ctx, "rebuilding missing application details", zap.Stringer("applicationID", id))
	_, err = p.storage.SaveApplicationDetails(ctx, p.newDetails(*app), 0)
	if err == nil {
		return nil
	}
	if !errors.Is(err, serrors.ErrConflict) {
		return fmt.Errorf("could not rebuild application details: %w", err)
	}

	// projected concurrently, possibly from an older snapshot
	details, err = p.storage.UpdateApplicationDetails(ctx, id, updates)
	if err != nil {
		return fmt.Errorf("could not update application details: %w", err)
	}
	if details == nil {
		return serrors.With(serrors.ErrNotFound, "application details %s not found", id)
	}

	return nil
}

// LinkIssue attaches the issue the application was filed with. Issues that
// were not synchronized yet are linked by a later edit or status change.
func (p *Projections) LinkIssue(ctx context.Context, e ApplicationCreated, _ eventbus.Envelope) error {
	if e.Application.IssueNumber == 0 {
		return nil
	}

	status := domain.ApplicationStatusKYC
	issue, err := p.storage.UpdateIssueDetails(ctx, e.Application.IssueNumber, storage.IssueDetailsUpdates{
		ApplicationID: &e.Application.ID,
		Status:        &status,
	})
	if err != nil {
		return fmt.Errorf("could not link issue: %w", err)
	}
	if issue == nil {
		logger.Info(ctx, "issue not synchronized yet",
			zap.Stringer("applicationID", e.Application.ID),
			zap.Int("issueNumber", e.Application.IssueNumber))
	}

	return nil
}

// ApplicationEdited applies the edited fields to the application details.
func (p *Projections) ApplicationEdited(ctx context.Context, e ApplicationEdited, _ eventbus.Envelope) error {
	updates := e.Changes.detailsUpdates()
	if updates.Empty() {
		return nil
	}

	return p.updateDetails(ctx, e.ApplicationID, updates)
}

// IssueEdited mirrors the applicant name and address onto the linked issue.
func (p *Projections) IssueEdited(ctx context.Context, e ApplicationEdited, _ eventbus.Envelope) error {
	if e.Changes.Name == nil && e.Changes.Address == nil {
		return nil
	}

	if _, err := p.storage.UpdateIssueDetailsByApplicationID(ctx, e.ApplicationID, storage.IssueDetailsUpdates{
		Name:    e.Changes.Name,
		Address: e.Changes.Address,
	}); err != nil {
		return fmt.Errorf("could not update issue details: %w", err)
	}

	return nil
}

// ApplicationStatusChanged sets the new status on both projections.
func (p *Projections) ApplicationStatusChanged(ctx context.Context,
	e ApplicationStatusChanged,
	_ eventbus.Envelope) error {
	if err := p.updateDetails(ctx, e.ApplicationID, storage.ApplicationDetailsUpdates{
		Status: &e.To,
	}); err != nil {
		return err
	}

	if _, err := p.storage.UpdateIssueDetailsByApplicationID(ctx, e.ApplicationID, storage.IssueDetailsUpdates{
		Status: &e.To,
	}); err != nil {
		return fmt.Errorf("could not update issue details status: %w", err)
	}

	return nil
}

// PullRequestLinked records the pull request on the application details.
func (p *Projections) PullRequestLinked(ctx context.Context, e PullRequestLinked, _ eventbus.Envelope) error {
	return p.updateDetails(ctx, e.ApplicationID, storage.ApplicationDetailsUpdates{
		PullRequestNumber: &e.Number,
		PullRequestURL:    &e.URL,
	})
}
