// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizdrill/backend/internal/catalog"
	"github.com/quizdrill/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	catalog *catalog.Manager
	quiz    *service.QuizService
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(cat *catalog.Manager, quiz *service.QuizService, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: cat,
		quiz:    quiz,
		logger:  logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. On failure it writes a
// 400 response and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// handleServiceError maps service errors to HTTP responses. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Message)
		return true
	}
	if errors.Is(err, service.ErrNoActiveSession) {
		respondError(w, http.StatusNotFound, "no active quiz session")
		return true
	}
	h.logger.Error("service error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
