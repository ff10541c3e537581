package v1handler

import (
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/pkg/storage"
	"fmt"
	"net/http"
)

// ListIssues returns a page of issue details.
func (h *Handler) ListIssues(w http.ResponseWriter, r *http.Request) {
	page, limit, search, err := h.pageParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Queries.IssueDetailsPage(r.Context(), page, limit, search)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("could not list issues: %w", err))

		return
	}

	writeJSON(w, http.StatusOK, res)
}

// SyncIssues synchronizes the issue details with GitHub.
func (h *Handler) SyncIssues(w http.ResponseWriter, r *http.Request) {
	res, err := commandbus.Send[storage.BulkResult](r.Context(), h.deps.Dispatcher, application.SyncIssues{})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, res)
}
