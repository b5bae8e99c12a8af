package worksheet

import "errors"

// Input limits.
const (
	MinTable     = 1
	MaxTable     = 10
	MinCount     = 1
	MaxCount     = 30
	DefaultCount = 30
)

var (
	ErrNoTables      = errors.New("at least one table is required")
	ErrNoValidTables = errors.New("no tables between 1 and 10 were selected")
)

// Config is a validated worksheet request.
type Config struct {
	Tables []int // distinct, each in [MinTable, MaxTable], in request order
	Count  int   // in [MinCount, MaxCount]
}

// DefaultConfig returns a config for the given tables with the default count.
// Tables are not validated; use NewConfig for untrusted input.
func DefaultConfig(tables ...int) Config {
	return Config{
		Tables: tables,
		Count:  DefaultCount,
	}
}

// NewConfig normalizes raw input. Out-of-range tables are dropped silently,
// duplicates collapse, and count defaults to DefaultCount when nil and is
// clamped to [MinCount, MaxCount].
func NewConfig(tables []int, count *int) (Config, error) {
	if len(tables) == 0 {
		return Config{}, ErrNoTables
	}

	seen := make(map[int]bool, len(tables))
	valid := make([]int, 0, len(tables))
	for _, t := range tables {
		if t < MinTable || t > MaxTable || seen[t] {
			continue
		}
		seen[t] = true
		valid = append(valid, t)
	}

	if len(valid) == 0 {
		return Config{}, ErrNoValidTables
	}

	n := DefaultCount
	if count != nil {
		n = clamp(*count, MinCount, MaxCount)
	}

	return Config{Tables: valid, Count: n}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
