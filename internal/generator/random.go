package generator

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/mathsheet/backend/internal/domain/worksheet"
)

// RecencyWindow is how many of the most recent multipliers are excluded
// from the next draw.
const RecencyWindow = 4

// Random is the default Generator. Every call draws from its own *rand.Rand,
// so concurrent requests never share generation state.
type Random struct {
	mu     sync.Mutex
	seeder *rand.Rand // nil = runtime-seeded global source
}

// New returns a Random generator seeded by the runtime.
func New() *Random {
	return &Random{}
}

// NewSeeded returns a Random generator whose sequence of worksheets is fully
// determined by seed.
func NewSeeded(seed uint64) *Random {
	return &Random{seeder: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Random) Generate(tables []int, total int) []worksheet.Problem {
	return Generate(g.next(), tables, total)
}

// next hands out a fresh source for one generation run.
func (g *Random) next() *rand.Rand {
	if g.seeder == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return rand.New(rand.NewPCG(g.seeder.Uint64(), g.seeder.Uint64()))
}

// Generate builds total problems using rng. Multipliers 0, 1 and 10 appear
// at most once each, and no multiplier is reused while it is still in the
// recency window.
func Generate(rng *rand.Rand, tables []int, total int) []worksheet.Problem {
	if total <= 0 {
		return []worksheet.Problem{}
	}

	state := newState()
	problems := make([]worksheet.Problem, 0, total)

	for range total {
		table := 1
		if len(tables) > 0 {
			table = tables[rng.IntN(len(tables))]
		}

		multiplier := state.pick(rng)
		state.record(multiplier)

		problems = append(problems, worksheet.Problem{
			Multiplier:   multiplier,
			Multiplicand: table,
		})
	}

	return problems
}

// state is the per-run bookkeeping. It never outlives one Generate call.
type state struct {
	usedZero bool
	usedOne  bool
	usedTen  bool
	recent   []int // oldest first, at most RecencyWindow entries
}

func newState() *state {
	return &state{recent: make([]int, 0, RecencyWindow+1)}
}

// candidates lists the multipliers still allowed for the next problem.
func (s *state) candidates() []int {
	out := make([]int, 0, worksheet.MaxMultiplier-worksheet.MinMultiplier+1)
	for m := worksheet.MinMultiplier; m <= worksheet.MaxMultiplier; m++ {
		if s.depleted(m) || slices.Contains(s.recent, m) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *state) depleted(m int) bool {
	switch m {
	case 0:
		return s.usedZero
	case 1:
		return s.usedOne
	case 10:
		return s.usedTen
	}
	return false
}

// pick draws uniformly from the candidates. When none are left it falls
// back to [2,9], which can never break the first-use rule.
func (s *state) pick(rng *rand.Rand) int {
	c := s.candidates()
	if len(c) == 0 {
		return 2 + rng.IntN(8)
	}
	return c[rng.IntN(len(c))]
}

func (s *state) record(m int) {
	switch m {
	case 0:
		s.usedZero = true
	case 1:
		s.usedOne = true
	case 10:
		s.usedTen = true
	}

	s.recent = append(s.recent, m)
	if len(s.recent) > RecencyWindow {
		s.recent = s.recent[1:]
	}
}
