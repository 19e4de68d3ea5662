package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/attendify/attendify/internal/app"
	"github.com/attendify/attendify/internal/metrics"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleSignUp creates an account. The minimum password length lives here
// and not in the service: it is form policy, same as the desktop app's
// signup dialog, and a looser check than anything the store guarantees.
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusCreated
	defer observe(start, r, &status)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = http.StatusBadRequest
		writeJSON(w, status, map[string]string{"error": "invalid request body"})
		return
	}

	if minLen := h.service.Config.Auth.MinPasswordLength; len(req.Password) < minLen {
		status = writeError(w, &app.ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters", minLen),
		})
		return
	}

	userID, err := h.service.SignUp(req.Username, req.Password)
	if err != nil {
		status = writeError(w, err)
		return
	}

	metrics.SignupsTotal.Inc()
	writeJSON(w, status, map[string]int64{"user_id": userID})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := http.StatusOK
	defer observe(start, r, &status)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status = http.StatusBadRequest
		writeJSON(w, status, map[string]string{"error": "invalid request body"})
		return
	}

	userID, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		status = writeError(w, err)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	writeJSON(w, status, map[string]int64{"user_id": userID})
}
