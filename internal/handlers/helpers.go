package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alfagnish/places-api/internal/apperr"
	"github.com/alfagnish/places-api/internal/logger"
	"github.com/alfagnish/places-api/internal/metrics"
	"github.com/alfagnish/places-api/internal/validation"
)

// errorResponse is the body of every error response.
type errorResponse struct {
	Error string `json:"error" example:"User not found"`
}

// writeJSON serialises v as JSON and writes it to the response with the
// given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto the API error taxonomy and writes
// {"error": "message"}. Errors outside the taxonomy become a 500 and are
// logged; client errors are logged at debug level only.
func writeError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	e, ok := apperr.As(err)
	if !ok {
		e = apperr.Internal.WithCause(err)
	}

	fields := logger.Fields{
		"code":   e.Code,
		"status": e.Status,
		"method": r.Method,
		"path":   r.URL.Path,
	}
	if e.Status >= http.StatusInternalServerError {
		log.WithFields(r.Context(), fields).Errorf("request failed: %v", err)
	} else if log.ShouldLog(logger.DEBUG) {
		log.WithFields(r.Context(), fields).Debugf("request rejected: %v", err)
	}

	metrics.ErrorsTotal.WithLabelValues(e.Code, strconv.Itoa(e.Status)).Inc()
	writeJSON(w, e.Status, errorResponse{Error: e.Message})
}

// decodeJSON checks the Content-Type header before decoding the body
// against schema, so a wrong media type wins over a malformed body.
func decodeJSON[T any](r *http.Request, schema *validation.Schema[T]) (T, error) {
	if err := validation.RequireJSON(r.Header.Get("Content-Type")); err != nil {
		var zero T
		return zero, err
	}
	return schema.Decode(r.Body)
}

// pathParam returns the decoded value of a route parameter. chi matches on
// the escaped path whenever it differs from the decoded one, so an id such
// as "a/b" sent as a%2Fb arrives still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value, nil
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", apperr.InvalidPath.WithCause(err)
	}
	return decoded, nil
}
