// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Worksheets
	mux.HandleFunc("POST /api/worksheet", h.createWorksheet)
	mux.HandleFunc("GET /api/worksheet/options", h.worksheetOptions)
}
