package worksheet

import "fmt"

// Multiplier bounds. Multipliers are the randomly chosen operand of each
// problem; 0, 1 and 10 are edge values allowed at most once per worksheet.
const (
	MinMultiplier = 0
	MaxMultiplier = 10
)

// Problem is a single multiplication exercise.
type Problem struct {
	Multiplier   int
	Multiplicand int // the table being practiced
}

// String renders the problem as printed on the sheet, e.g. "7 x 3 = ___".
func (p Problem) String() string {
	return fmt.Sprintf("%d x %d = ___", p.Multiplier, p.Multiplicand)
}

// IsEdge reports whether m is one of the first-use limited multipliers.
func IsEdge(m int) bool {
	return m == 0 || m == 1 || m == 10
}
