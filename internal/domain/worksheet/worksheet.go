package worksheet

import (
	"time"

	"github.com/mathsheet/backend/internal/id"
)

// Worksheet is a generated set of problems ready for rendering.
// It lives for the duration of a single request and is never stored.
type Worksheet struct {
	ID        string
	Tables    []int
	Problems  []Problem
	CreatedAt time.Time
}

// New creates a worksheet for the given config and problems.
func New(config Config, problems []Problem) *Worksheet {
	tables := make([]int, len(config.Tables))
	copy(tables, config.Tables)

	return &Worksheet{
		ID:        id.GenerateID(),
		Tables:    tables,
		Problems:  problems,
		CreatedAt: time.Now().UTC(),
	}
}

// Lines returns the problems as printed text, in order.
func (w *Worksheet) Lines() []string {
	lines := make([]string, len(w.Problems))
	for i, p := range w.Problems {
		lines[i] = p.String()
	}
	return lines
}
