package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"showroom-backend/internal/logger"
	"showroom-backend/internal/security"
	"showroom-backend/internal/service"
)

// errorResponse is the wire shape of every error the API returns.
type errorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response body", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}

// writeServiceError maps service-layer errors onto HTTP status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		notFoundErr  *service.NotFoundError
		stateErr     *service.InvalidStateError
		conflictErr  *service.ConflictError
		forbiddenErr *service.ForbiddenError
	)
	switch {
	case errors.As(err, &notFoundErr):
		writeError(w, r, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &stateErr):
		writeError(w, r, http.StatusConflict, stateErr.Error())
	case errors.As(err, &conflictErr):
		writeError(w, r, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &forbiddenErr):
		writeError(w, r, http.StatusForbidden, forbiddenErr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, security.ErrExpiredToken), errors.Is(err, security.ErrInvalidToken):
		writeError(w, r, http.StatusUnauthorized, err.Error())
	default:
		logger.ErrorContext(r.Context(), "unhandled service error", "error", err, "path", r.URL.Path)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
