package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-inbox-api/internal/domain"
)

// DetailEnvelope is the generic error wrapper: {"detail": "..."}.
type DetailEnvelope struct {
	Detail string `json:"detail"`
}

// MessageEnvelope wraps informational responses: {"message": "..."}.
type MessageEnvelope struct {
	Message string `json:"message"`
}

// StatusEnvelope wraps bare acknowledgements: {"status": "..."}.
type StatusEnvelope struct {
	Status string `json:"status"`
}

// CreatedEnvelope acknowledges a newly stored document.
type CreatedEnvelope struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, DetailEnvelope{Detail: detail})
}

// httpError maps service errors onto status codes and their fixed detail
// strings. Anything unrecognized is logged and reported as a bare 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusInternalServerError, "Database not available")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	default:
		slog.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
