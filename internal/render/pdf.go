package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/mathsheet/backend/internal/layout"
)

// FontFamily is the built-in font used for every problem.
const FontFamily = "Helvetica"

var ErrNoLines = errors.New("render: nothing to lay out")

// Metadata is written into the PDF information dictionary.
type Metadata struct {
	Title     string
	Subject   string
	Keywords  string
	CreatedAt time.Time
}

// Renderer turns problem lines into a single-page PDF.
type Renderer struct {
	Geometry layout.Geometry
	Creator  string
	// Compress controls content stream compression. Tests disable it to
	// inspect the page text.
	Compress bool
}

// NewRenderer returns a renderer for the A4 worksheet page.
func NewRenderer() *Renderer {
	return &Renderer{
		Geometry: layout.A4(),
		Creator:  "mathsheet",
		Compress: true,
	}
}

// Render lays out lines and serializes the page. The context is checked
// before serialization so a cancelled request never yields a partial file.
func (r *Renderer) Render(ctx context.Context, lines []string, meta Metadata) ([]byte, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	g := r.Geometry
	l := layout.Compute(g, len(lines))

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetCompression(r.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetTitle(meta.Title, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetKeywords(meta.Keywords, true)
	pdf.SetCreator(r.Creator, true)
	pdf.SetProducer(r.Creator, true)
	if !meta.CreatedAt.IsZero() {
		pdf.SetCreationDate(meta.CreatedAt)
		pdf.SetModificationDate(meta.CreatedAt)
	}

	pdf.AddPage()
	pdf.SetFont(FontFamily, "", l.FontSize)
	pdf.SetTextColor(0, 0, 0)

	for _, p := range l.Placements {
		// fpdf measures y from the top edge.
		pdf.Text(p.X, g.PageHeight-p.Y, lines[p.Index])
	}

	if err := ctx.Err(); err != nil {
		pdf.Close()
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}
