// internal/api/handler.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mathsheet/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	worksheets *service.WorksheetService
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(worksheets *service.WorksheetService, logger *slog.Logger) *Handler {
	return &Handler{
		worksheets: worksheets,
		logger:     logger,
	}
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
