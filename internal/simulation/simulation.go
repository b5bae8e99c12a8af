// simulation/simulation.go
package simulation

import (
	"fmt"
	"io"

	"github.com/mathsheet/backend/internal/domain/worksheet"
	"github.com/mathsheet/backend/internal/generator"
)

// Audit describes how one generated worksheet behaves against the
// generation rules.
type Audit struct {
	Problems      int
	EdgeCounts    map[int]int // occurrences of 0, 1 and 10
	WindowRepeats int         // multipliers reused within the recency window
	ForeignTables int         // multiplicands not among the selected tables
}

// Clean reports whether the worksheet obeyed every rule.
func (a Audit) Clean() bool {
	for _, n := range a.EdgeCounts {
		if n > 1 {
			return false
		}
	}
	return a.WindowRepeats == 0 && a.ForeignTables == 0
}

// AuditProblems checks problems generated for tables.
func AuditProblems(tables []int, problems []worksheet.Problem) Audit {
	allowed := make(map[int]bool, len(tables))
	for _, t := range tables {
		allowed[t] = true
	}

	a := Audit{
		Problems:   len(problems),
		EdgeCounts: map[int]int{0: 0, 1: 0, 10: 0},
	}
	for i, p := range problems {
		if worksheet.IsEdge(p.Multiplier) {
			a.EdgeCounts[p.Multiplier]++
		}
		if !allowed[p.Multiplicand] {
			a.ForeignTables++
		}
		for j := max(0, i-generator.RecencyWindow); j < i; j++ {
			if problems[j].Multiplier == p.Multiplier {
				a.WindowRepeats++
				break
			}
		}
	}
	return a
}

// Report aggregates audits over many runs.
type Report struct {
	Runs          int
	Violations    int // runs whose audit was not clean
	WindowRepeats int
	Histogram     [worksheet.MaxMultiplier + 1]int // multiplier → occurrences
}

// Run generates runs worksheets for config and audits each one.
func Run(g generator.Generator, config worksheet.Config, runs int) Report {
	var r Report
	for i := 0; i < runs; i++ {
		problems := g.Generate(config.Tables, config.Count)
		a := AuditProblems(config.Tables, problems)

		r.Runs++
		r.WindowRepeats += a.WindowRepeats
		if !a.Clean() {
			r.Violations++
		}
		for _, p := range problems {
			r.Histogram[p.Multiplier]++
		}
	}
	return r
}

// Print writes a human-readable summary of r.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Runs: %d\n", r.Runs)
	fmt.Fprintf(w, "Violations: %d\n", r.Violations)
	fmt.Fprintf(w, "Window repeats: %d\n", r.WindowRepeats)
	fmt.Fprintln(w, "Multiplier histogram:")
	for m, n := range r.Histogram {
		fmt.Fprintf(w, "  %2d: %d\n", m, n)
	}
}
