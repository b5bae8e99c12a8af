// Package layout computes where each problem goes on a worksheet page.
//
// The math is independent of any PDF backend: Compute maps a page geometry
// and a problem count to a font size, a line spacing and one placement per
// problem. Lengths are millimetres, font sizes are points, and y is measured
// from the bottom edge of the page.
package layout

import "math"

const (
	// PointsPerMM converts millimetres to typographic points.
	PointsPerMM = 2.83465

	// SingleRowFontSize is used when there is nothing to fit vertically.
	SingleRowFontSize = 24.0

	// LeadingRatio is the gap between rows as a fraction of the font size.
	LeadingRatio = 1.0

	// Columns per page.
	Columns = 2
)

// Geometry describes the fixed page.
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	MarginX      float64 // left and right
	MarginTop    float64
	MarginBottom float64
	Gutter       float64 // space between the two columns
}

// A4 returns the worksheet page: 210 x 297 mm with 18 mm margins and a
// 12 mm gutter.
func A4() Geometry {
	return Geometry{
		PageWidth:    210,
		PageHeight:   297,
		MarginX:      18,
		MarginTop:    18,
		MarginBottom: 18,
		Gutter:       12,
	}
}

// Placement is the position of one problem. X and Y locate the left end of
// the text baseline.
type Placement struct {
	Index  int
	Column int
	Row    int
	X      float64
	Y      float64
}

// Layout is the result of Compute.
type Layout struct {
	Rows        int
	FontSize    float64 // points
	LineSpacing float64 // mm between successive baselines
	ColumnWidth float64
	Placements  []Placement
}

// Compute lays out count problems in two columns. The first half of the
// sequence fills the left column top to bottom, the rest fills the right.
func Compute(g Geometry, count int) Layout {
	if count < 0 {
		count = 0
	}
	rows := (count + 1) / Columns

	available := math.Max(g.PageHeight-g.MarginTop-g.MarginBottom, 0) * PointsPerMM

	fontSize := SingleRowFontSize
	lineSpacing := 0.0
	if rows > 1 {
		units := float64(rows) + float64(rows-1)*LeadingRatio
		fontSize = available / units
		lineSpacing = fontSize * (1 + LeadingRatio) / PointsPerMM
	}

	columnWidth := math.Max(g.PageWidth-2*g.MarginX-g.Gutter, 0) / Columns
	leftX := g.MarginX
	rightX := g.MarginX + columnWidth + g.Gutter
	topY := g.PageHeight - g.MarginTop

	placements := make([]Placement, count)
	for i := range placements {
		column, row := Cell(i, rows)
		x := leftX
		if column > 0 {
			x = rightX
		}
		placements[i] = Placement{
			Index:  i,
			Column: column,
			Row:    row,
			X:      x,
			Y:      topY - lineSpacing*float64(row),
		}
	}

	return Layout{
		Rows:        rows,
		FontSize:    fontSize,
		LineSpacing: lineSpacing,
		ColumnWidth: columnWidth,
		Placements:  placements,
	}
}

// Cell maps a sequence index to its column and row.
func Cell(index, rows int) (column, row int) {
	if rows == 0 {
		return 0, 0
	}
	return index / rows, index % rows
}
