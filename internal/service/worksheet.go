// internal/service/worksheet.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mathsheet/backend/internal/domain/worksheet"
	"github.com/mathsheet/backend/internal/generator"
	"github.com/mathsheet/backend/internal/render"
	"github.com/mathsheet/backend/internal/worker"
)

// ErrRender marks a document serialization fault. It is not retried:
// the same input would fail the same way.
var ErrRender = errors.New("worksheet rendering failed")

// Renderer serializes problem lines into a document.
type Renderer interface {
	Render(ctx context.Context, lines []string, meta render.Metadata) ([]byte, error)
}

// Document is a rendered worksheet.
type Document struct {
	Worksheet *worksheet.Worksheet
	PDF       []byte
}

// WorksheetService runs the generate → layout → serialize pipeline.
// It holds no per-request state.
type WorksheetService struct {
	generator generator.Generator
	renderer  Renderer
	pool      *worker.Pool[[]byte] // optional; bounds concurrent renders
	title     string
	logger    *slog.Logger
}

// NewWorksheetService creates a WorksheetService. pool may be nil, in which
// case rendering happens on the caller's goroutine.
func NewWorksheetService(g generator.Generator, r Renderer, pool *worker.Pool[[]byte], title string, logger *slog.Logger) *WorksheetService {
	return &WorksheetService{
		generator: g,
		renderer:  r,
		pool:      pool,
		title:     title,
		logger:    logger,
	}
}

// Generate builds the problems for a validated config.
func (s *WorksheetService) Generate(config worksheet.Config) *worksheet.Worksheet {
	problems := s.generator.Generate(config.Tables, config.Count)
	return worksheet.New(config, problems)
}

// Render serializes ws. Context cancellation is returned as is; any other
// failure is wrapped in ErrRender.
func (s *WorksheetService) Render(ctx context.Context, ws *worksheet.Worksheet) ([]byte, error) {
	meta := render.Metadata{
		Title:     s.title,
		Subject:   "Multiplication tables " + joinInts(ws.Tables),
		Keywords:  ws.ID,
		CreatedAt: ws.CreatedAt,
	}
	lines := ws.Lines()

	job := func(ctx context.Context) ([]byte, error) {
		return s.renderer.Render(ctx, lines, meta)
	}

	var (
		out []byte
		err error
	)
	if s.pool != nil {
		out, err = s.pool.Do(ctx, ws.ID, job)
	} else {
		out, err = job(ctx)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Error("render failed", "worksheet_id", ws.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

// Create generates and renders a worksheet in one call.
func (s *WorksheetService) Create(ctx context.Context, config worksheet.Config) (*Document, error) {
	ws := s.Generate(config)

	out, err := s.Render(ctx, ws)
	if err != nil {
		return nil, err
	}

	s.logger.Info("worksheet created",
		"worksheet_id", ws.ID,
		"tables", ws.Tables,
		"count", len(ws.Problems),
		"bytes", len(out),
	)
	return &Document{Worksheet: ws, PDF: out}, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
