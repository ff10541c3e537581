package v1handler

import (
	"encoding/json"
	"errors"
	"filplus/pkg/serrors"
	"io"
	"net/http"
	"strconv"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// pageParams reads page, limit and search query parameters.
func (h *Handler) pageParams(r *http.Request) (page, limit int, search string, err error) {
	q := r.URL.Query()

	page, err = positiveInt(q.Get("page"), 1)
	if err != nil {
		return 0, 0, "", serrors.With(serrors.ErrBadRequest, "page must be a positive integer")
	}
	limit, err = positiveInt(q.Get("limit"), h.options.DefaultLimit)
	if err != nil {
		return 0, 0, "", serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	}

	return page, min(limit, h.options.MaxLimit), q.Get("search"), nil
}

func positiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}

	return n, nil
}
