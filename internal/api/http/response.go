package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"mentorhub-backend/internal/domain"
	"mentorhub-backend/internal/logger"
	"mentorhub-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes. All
// five kinds are caller-visible 4xx responses; anything unrecognized is a
// 500 with a generic body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domain.ErrDuplicateRequest):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthorizedTransition):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrInvalidStateTransition):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	default:
		logger.Error("Unhandled error", "error", err)
	}

	writeJSON(w, status, map[string]string{"error": message})
}
