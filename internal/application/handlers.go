package application

import (
	"context"
	"errors"
	"filplus/internal/commandbus"
	"filplus/internal/eventbus"
	"filplus/pkg/domain"
	"filplus/pkg/github"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrAllocatorNotFound indicates the requested allocator file does not exist.
	ErrAllocatorNotFound = serrors.NewKind("ALLOCATOR_NOT_FOUND")
	// ErrFetchFailed indicates an allocator file could not be fetched or parsed.
	ErrFetchFailed = serrors.NewKind("FETCH_FAILED")
)

// RefreshRequest is the result of RequestRefresh.
type RefreshRequest struct {
	ApplicationID domain.ApplicationID `json:"applicationId"`
	// Enqueued is false when an identical refresh is already queued.
	Enqueued bool `json:"enqueued"`
}

// Handlers implements the command handlers. Every handler returns the
// command's data and the events to publish; none publishes on its own.
type Handlers struct {
	options Options
	storage storage.Storage
	github  github.Client
}

// New creates the command handlers backed by the given storage and GitHub client.
func New(storage storage.Storage, github github.Client, options Options) *Handlers {
	return &Handlers{
		options: options,
		storage: storage,
		github:  github,
	}
}

func (h *Handlers) applicationByID(ctx context.Context, id domain.ApplicationID) (*domain.Application, error) {
	app, err := h.storage.ApplicationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get application: %w", err)
	}
	if app == nil {
		return nil, serrors.With(serrors.ErrNotFound, "application %s not found", id)
	}

	return app, nil
}

// EditApplication maps the non-empty fields of the allocator file onto the
// application. Identical input yields identical state, so the command can be
// dispatched again safely.
func (h *Handlers) EditApplication(ctx context.Context, cmd EditApplication) (commandbus.Result, error) {
	app, err := h.applicationByID(ctx, cmd.ApplicationID)
	if err != nil {
		return commandbus.Result{}, err
	}

	changes := ChangesFromFile(cmd.File)
	updates := changes.applicationUpdates()
	if cmd.Fingerprint != "" {
		updates.Fingerprint = &cmd.Fingerprint
	}
	if !updates.Empty() {
		app, err = h.storage.UpdateApplication(ctx, cmd.ApplicationID, updates)
		if err != nil {
			return commandbus.Result{}, fmt.Errorf("could not update application: %w", err)
		}
		if app == nil {
			return commandbus.Result{}, serrors.With(serrors.ErrNotFound, "application %s not found", cmd.ApplicationID)
		}
	}

	return commandbus.Result{
		Data: app,
		Events: []eventbus.Event{ApplicationEdited{
			ApplicationID: cmd.ApplicationID,
			Changes:       changes,
			Fingerprint:   cmd.Fingerprint,
		}},
	}, nil
}

// FetchAllocator reads the allocator file from the default branch of the
// registry. A missing file is reported as ErrAllocatorNotFound, any other
// failure as ErrFetchFailed; the GitHub error stays reachable as the cause.
func (h *Handlers) FetchAllocator(ctx context.Context, cmd FetchAllocator) (commandbus.Result, error) {
	if !isPathSegment(cmd.JSONNumber) {
		return commandbus.Result{}, serrors.With(serrors.ErrBadRequest, "invalid JSON number %q", cmd.JSONNumber)
	}

	file, err := h.github.GetFile(ctx, h.options.Owner, h.options.Repo, h.options.AllocatorPath(cmd.JSONNumber), "")
	if err != nil {
		logger.Info(ctx, "could not fetch allocator file",
			zap.String("jsonNumber", cmd.JSONNumber),
			logger.Kind(err),
			zap.Error(err))
		if errors.Is(err, serrors.ErrNotFound) {
			return commandbus.Result{}, serrors.Opaque(ErrAllocatorNotFound, err,
				"The Allocator could not be found for the given JSON number or hash: %s", cmd.JSONNumber)
		}

		return commandbus.Result{}, serrors.Opaque(ErrFetchFailed, err, "Failed to fetch JSON number")
	}

	allocator, err := domain.ParseAllocatorFile(file.Content)
	if err != nil {
		return commandbus.Result{}, serrors.Opaque(ErrFetchFailed, err, "Failed to fetch JSON number")
	}

	return commandbus.Result{Data: allocator}, nil
}

// CreateApplication stores a new application in KYC phase.
func (h *Handlers) CreateApplication(ctx context.Context, cmd CreateApplication) (commandbus.Result, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return commandbus.Result{}, serrors.With(serrors.ErrBadRequest, "application name is required")
	}
	if cmd.PullRequestNumber < 0 || cmd.IssueNumber < 0 {
		return commandbus.Result{}, serrors.With(serrors.ErrBadRequest, "references must not be negative")
	}

	id := cmd.ID
	if id == "" {
		id = domain.NewApplicationID()
	}
	if !isPathSegment(string(id)) {
		return commandbus.Result{}, serrors.With(serrors.ErrBadRequest, "invalid application id %q", id)
	}

	app, err := h.storage.StoreApplication(ctx, domain.Application{
		ID:                        id,
		Number:                    cmd.Number,
		Name:                      cmd.Name,
		Organization:              cmd.Organization,
		Address:                   cmd.Address,
		Github:                    cmd.Github,
		AllocationTrancheSchedule: cmd.AllocationTrancheSchedule,
		Status:                    domain.ApplicationStatusKYC,
		PullRequestNumber:         cmd.PullRequestNumber,
		PullRequestURL:            cmd.PullRequestURL,
		IssueNumber:               cmd.IssueNumber,
	})
	if err != nil {
		return commandbus.Result{}, fmt.Errorf("could not store application: %w", err)
	}

	return commandbus.Result{
		Data:   app,
		Events: []eventbus.Event{ApplicationCreated{Application: *app}},
	}, nil
}

// TransitionApplication moves the application forward in its lifecycle.
// Backward moves and moves out of a terminal phase are conflicts.
func (h *Handlers) TransitionApplication(ctx context.Context,
	cmd TransitionApplication) (commandbus.Result, error) {
	if !cmd.Status.Valid() {
		return commandbus.Result{}, serrors.With(serrors.ErrBadRequest, "unknown status %q", cmd.Status)
	}

	app, err := h.applicationByID(ctx, cmd.ApplicationID)
	if err != nil {
		return commandbus.Result{}, err
	}
	if !app.Status.CanTransition(cmd.Status) {
		return commandbus.Result{}, serrors.With(serrors.ErrConflict,
			"application %s cannot move from %s to %s", app.ID, app.Status, cmd.Status)
	}

	from := app.Status
	app, err = h.storage.UpdateApplication(ctx, cmd.ApplicationID, storage.ApplicationUpdates{
		Status:         &cmd.Status,
		ExpectedStatus: &from,
	})
	if err != nil {
		return commandbus.Result{}, fmt.Errorf("could not update application status: %w", err)
	}
	if app == nil {
		return commandbus.Result{}, serrors.With(serrors.ErrNotFound, "application %s not found", cmd.ApplicationID)
	}

	return commandbus.Result{
		Data: app,
		Events: []eventbus.Event{ApplicationStatusChanged{
			ApplicationID: cmd.ApplicationID,
			From:          from,
			To:            cmd.Status,
		}},
	}, nil
}

// LinkPullRequest records the pull request the reconciler reads the
// application's allocator file from.
func (h *Handlers) LinkPullRequest(ctx context.Context, cmd LinkPullRequest) (commandbus.Result, error) {
	if cmd.Number <= 0 {
		return commandbus.Result{}, serrors.With(serrors.ErrBadRequest, "pull request number must be positive")
	}
	if _, err := h.applicationByID(ctx, cmd.ApplicationID); err != nil {
		return commandbus.Result{}, err
	}

	app, err := h.storage.UpdateApplication(ctx, cmd.ApplicationID, storage.ApplicationUpdates{
		PullRequestNumber: &cmd.Number,
		PullRequestURL:    &cmd.URL,
	})
	if err != nil {
		return commandbus.Result{}, fmt.Errorf("could not link pull request: %w", err)
	}
	if app == nil {
		return commandbus.Result{}, serrors.With(serrors.ErrNotFound, "application %s not found", cmd.ApplicationID)
	}

	return commandbus.Result{
		Data: app,
		Events: []eventbus.Event{PullRequestLinked{
			ApplicationID: cmd.ApplicationID,
			Number:        cmd.Number,
			URL:           cmd.URL,
		}},
	}, nil
}

// RequestRefresh enqueues a refresh job for the application. Requests for an
// application that already has a refresh queued are deduplicated by River.
func (h *Handlers) RequestRefresh(ctx context.Context, cmd RequestRefresh) (commandbus.Result, error) {
	var enqueued bool
	if err := h.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		app, err := tx.ApplicationByID(ctx, cmd.ApplicationID)
		if err != nil {
			return fmt.Errorf("could not get application: %w", err)
		}
		if app == nil {
			return serrors.With(serrors.ErrNotFound, "application %s not found", cmd.ApplicationID)
		}

		enqueued, err = tx.AddJob(ctx, RefreshJobArgs{
			ApplicationID:   cmd.ApplicationID,
			maxAttempts:     h.options.MaxAttempts,
			uniqueJobPeriod: h.options.UniquePeriod,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return commandbus.Result{}, err
	}

	return commandbus.Result{Data: RefreshRequest{ApplicationID: cmd.ApplicationID, Enqueued: enqueued}}, nil
}

// SyncIssues lists the application issues of the registry and upserts them
// into the issue details projection keyed by GitHub issue id.
func (h *Handlers) SyncIssues(ctx context.Context, _ SyncIssues) (commandbus.Result, error) {
	issues, err := h.github.ListIssues(ctx, h.options.Owner, h.options.Repo, github.IssueListOptions{
		State: "all",
		Label: h.options.IssueLabel,
	})
	if err != nil {
		return commandbus.Result{}, fmt.Errorf("could not list issues: %w", err)
	}

	records := make([]domain.IssueDetails, 0, len(issues))
	for _, issue := range issues {
		name, address := domain.IssueApplicant(domain.ParseIssueForm(issue.Body))
		records = append(records, domain.IssueDetails{
			GithubIssueID:     issue.ID,
			GithubIssueNumber: issue.Number,
			Title:             issue.Title,
			Creator:           issue.User,
			State:             issue.State,
			Name:              name,
			Address:           address,
			IssueCreatedAt:    issue.CreatedAt,
			IssueClosedAt:     issue.ClosedAt,
		})
	}

	result, err := h.storage.BulkUpsertIssueDetails(ctx, records, storage.IssueKeyGithubIssueID)
	if err != nil {
		return commandbus.Result{}, fmt.Errorf("could not upsert issues: %w", err)
	}
	logger.Info(ctx, "issues synchronized",
		zap.Int("issues", len(records)),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated))

	return commandbus.Result{Data: result}, nil
}

// isPathSegment reports whether s can be used as a single registry path or
// route segment.
func isPathSegment(s string) bool {
	return s != "" && !strings.ContainsAny(s, `/\`) && !strings.Contains(s, "..")
}
