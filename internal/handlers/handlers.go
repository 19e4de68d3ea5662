package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/attendify/attendify/internal/app"
	"github.com/attendify/attendify/internal/metrics"
)

// Handler adapts the service's synchronous call surface to JSON over HTTP.
type Handler struct {
	service *app.Service
}

func NewHandler(service *app.Service) *Handler {
	return &Handler{
		service: service,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps the service's typed errors onto HTTP statuses. The message
// always describes what to correct; nothing fails silently.
func writeError(w http.ResponseWriter, err error) int {
	var verr *app.ValidationError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &verr), errors.Is(err, app.ErrInvalidDay):
		status = http.StatusBadRequest
	case errors.Is(err, app.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, app.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, app.ErrDuplicateUsername):
		status = http.StatusConflict
	case errors.Is(err, app.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		logger.Error.Printf("Internal error: %v", err)
		writeJSON(w, status, map[string]string{"error": "internal error"})
		return status
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
	return status
}

// observe feeds the request duration histogram; status is finalized by the
// time the deferred call runs.
func observe(start time.Time, r *http.Request, status *int) {
	metrics.APIRequestDuration.WithLabelValues(
		r.Pattern,
		r.Method,
		strconv.Itoa(*status),
	).Observe(time.Since(start).Seconds())
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, &app.ValidationError{Field: name, Reason: "must be a numeric id"}
	}
	return id, nil
}
