package generator

import "github.com/mathsheet/backend/internal/domain/worksheet"

// Generator produces an ordered list of multiplication problems.
// Implementations must be safe for concurrent use; each call starts
// from a clean generation state.
type Generator interface {
	// Generate returns exactly total problems whose multiplicands are
	// drawn from tables.
	Generate(tables []int, total int) []worksheet.Problem
}
