package v1handler

import (
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CreateApplicationRequest struct {
	ID                        string `json:"id"`
	Number                    int64  `json:"number"`
	Name                      string `json:"name"`
	Organization              string `json:"organization"`
	Address                   string `json:"address"`
	Github                    string `json:"github"`
	AllocationTrancheSchedule string `json:"allocationTrancheSchedule"`
	IssueNumber               int    `json:"issueNumber"`
	PullRequestNumber         int    `json:"pullRequestNumber"`
	PullRequestURL            string `json:"pullRequestUrl"`
}

type TransitionApplicationRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

type LinkPullRequestRequest struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
}

func applicationID(r *http.Request) domain.ApplicationID {
	return domain.ApplicationID(chi.URLParam(r, "id"))
}

// ListApplications returns a page of application details.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	page, limit, search, err := h.pageParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Queries.ApplicationDetailsPage(r.Context(), page, limit, search)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("could not list applications: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetApplication returns the details of a single application.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id := applicationID(r)

	details, err := h.deps.Queries.ApplicationDetailsByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("could not get application: %w", err))

		return
	}
	if details == nil {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "application %s not found", id))

		return
	}

	writeJSON(w, http.StatusOK, details)
}

// CreateApplication starts tracking a new application.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	app, err := commandbus.Send[*domain.Application](r.Context(), h.deps.Dispatcher, application.CreateApplication{
		ID:                        domain.ApplicationID(req.ID),
		Number:                    req.Number,
		Name:                      req.Name,
		Organization:              req.Organization,
		Address:                   req.Address,
		Github:                    req.Github,
		AllocationTrancheSchedule: req.AllocationTrancheSchedule,
		IssueNumber:               req.IssueNumber,
		PullRequestNumber:         req.PullRequestNumber,
		PullRequestURL:            req.PullRequestURL,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, app)
}

// TransitionApplication moves an application to another status.
func (h *Handler) TransitionApplication(w http.ResponseWriter, r *http.Request) {
	var req TransitionApplicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	app, err := commandbus.Send[*domain.Application](r.Context(), h.deps.Dispatcher,
		application.TransitionApplication{ApplicationID: applicationID(r), Status: req.Status})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, app)
}

// LinkPullRequest attaches the registry pull request of an application.
func (h *Handler) LinkPullRequest(w http.ResponseWriter, r *http.Request) {
	var req LinkPullRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	app, err := commandbus.Send[*domain.Application](r.Context(), h.deps.Dispatcher,
		application.LinkPullRequest{ApplicationID: applicationID(r), Number: req.Number, URL: req.URL})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, app)
}

// RefreshApplication queues an out-of-band reconciliation of an application.
func (h *Handler) RefreshApplication(w http.ResponseWriter, r *http.Request) {
	res, err := commandbus.Send[application.RefreshRequest](r.Context(), h.deps.Dispatcher,
		application.RequestRefresh{ApplicationID: applicationID(r)})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusAccepted, res)
}
