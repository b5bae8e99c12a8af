package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/mathsheet/backend/internal/domain/worksheet"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateWorksheetRequest struct {
	Tables []int `json:"tables"`
	Count  *int  `json:"count,omitempty"` // defaults to 30, clamped to [1,30]
}

type WorksheetOptionsResponse struct {
	Tables       []int `json:"tables"`
	MinCount     int   `json:"min_count"`
	MaxCount     int   `json:"max_count"`
	DefaultCount int   `json:"default_count"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createWorksheet godoc
// @Summary      Generate a worksheet
// @Description  Generates randomized multiplication problems for the selected tables and returns them as a one-page PDF.
// @Tags         worksheets
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      CreateWorksheetRequest  true  "Tables and problem count"
// @Success      200      {file}    binary
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/worksheet [post]
func (h *Handler) createWorksheet(w http.ResponseWriter, r *http.Request) {
	var req CreateWorksheetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	config, err := worksheet.NewConfig(req.Tables, req.Count)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.worksheets.Create(r.Context(), config)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger.Warn("worksheet request abandoned", "error", err)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=worksheet.pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.PDF)))
	w.Header().Set("X-Worksheet-ID", doc.Worksheet.ID)
	w.WriteHeader(http.StatusOK)
	w.Write(doc.PDF)
}

// worksheetOptions godoc
// @Summary      Worksheet limits
// @Description  Lists the selectable tables and the allowed problem counts.
// @Tags         worksheets
// @Produce      json
// @Success      200  {object}  WorksheetOptionsResponse
// @Router       /api/worksheet/options [get]
func (h *Handler) worksheetOptions(w http.ResponseWriter, r *http.Request) {
	tables := make([]int, 0, worksheet.MaxTable-worksheet.MinTable+1)
	for t := worksheet.MinTable; t <= worksheet.MaxTable; t++ {
		tables = append(tables, t)
	}

	respondJSON(w, http.StatusOK, WorksheetOptionsResponse{
		Tables:       tables,
		MinCount:     worksheet.MinCount,
		MaxCount:     worksheet.MaxCount,
		DefaultCount: worksheet.DefaultCount,
	})
}
