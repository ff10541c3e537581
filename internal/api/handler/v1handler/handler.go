// Package v1handler implements the version 1 HTTP API. Writes are dispatched
// as commands on the command bus; reads are served from the projections.
package v1handler

import (
	"context"
	"errors"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/internal/config"
	"filplus/pkg/domain"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Queries are the read projections served by the API.
type Queries interface {
	ApplicationDetailsByID(ctx context.Context, ID domain.ApplicationID) (*domain.ApplicationDetails, error)
	ApplicationDetailsPage(ctx context.Context,
		page, limit int,
		search string) (storage.Page[domain.ApplicationDetails], error)
	IssueDetailsPage(ctx context.Context, page, limit int, search string) (storage.Page[domain.IssueDetails], error)
}

// Deps are the collaborators of the handler.
type Deps struct {
	Dispatcher commandbus.Dispatcher
	Queries    Queries
}

// Options configure pagination of listings.
type Options struct {
	// DefaultLimit is the page size used when none is requested.
	DefaultLimit int
	// MaxLimit caps the requested page size.
	MaxLimit int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	if options.DefaultLimit < 1 {
		options.DefaultLimit = 10
	}
	if options.MaxLimit < options.DefaultLimit {
		options.MaxLimit = options.DefaultLimit
	}

	return &Handler{deps: deps, options: options}
}

// Routes returns the router of the v1 API, to be mounted under /v1.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "route %s not found", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: "method " + r.Method + " not allowed",
		})
	})

	r.Route("/applications", func(r chi.Router) {
		r.Get("/", h.ListApplications)
		r.Post("/", h.CreateApplication)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetApplication)
			r.Post("/status", h.TransitionApplication)
			r.Post("/pull-request", h.LinkPullRequest)
			r.Post("/refresh", h.RefreshApplication)
		})
	})
	r.Get("/allocators/{jsonNumber}", h.GetAllocator)
	r.Route("/issues", func(r chi.Router) {
		r.Get("/", h.ListIssues)
		r.Post("/sync", h.SyncIssues)
	})

	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status code.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status  int
	message string
}

var kindMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrNotFound:              {http.StatusNotFound, "resource not found"},
	application.ErrAllocatorNotFound: {http.StatusNotFound, "allocator not found"},
	serrors.ErrBadRequest:            {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized:          {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:             {http.StatusForbidden, "forbidden"},
	serrors.ErrConflict:              {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:           {http.StatusTooManyRequests, "rate limited"},
	serrors.ErrParse:                 {http.StatusUnprocessableEntity, "unprocessable content"},
	application.ErrFetchFailed:       {http.StatusBadGateway, "upstream failure"},
	serrors.ErrUnavailable:           {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTransient:             {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:               {http.StatusGatewayTimeout, "timeout"},
}

// NewError maps err to a response. The kind of err selects the status code
// and the message attached to the semantic error is returned to the client.
// Errors of unknown kinds are reported as internal errors without details.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	mapping, ok := kindMappings[kind]
	if !ok {
		logger.Error(ctx, "request failed", logger.Kind(err), zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := mapping.message
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}

	if mapping.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed", logger.Kind(err), zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", logger.Kind(err), zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}
