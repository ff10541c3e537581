package v1handler

import (
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/pkg/domain"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetAllocator returns the parsed allocator file of the registry.
func (h *Handler) GetAllocator(w http.ResponseWriter, r *http.Request) {
	file, err := commandbus.Send[*domain.AllocatorFile](r.Context(), h.deps.Dispatcher,
		application.FetchAllocator{JSONNumber: chi.URLParam(r, "jsonNumber")})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, file)
}
