package render_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/mathsheet/backend/internal/render"
)

func TestMain(m *testing.M) {
	// Keep pdfcpu from creating a config directory under $HOME.
	model.ConfigPath = "disable"
	os.Exit(m.Run())
}

func problemLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d x %d = ___", i%9+2, 7)
	}
	return lines
}

func pageCount(t *testing.T, b []byte) int {
	t.Helper()
	n, err := api.PageCount(bytes.NewReader(b), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("pdfcpu could not read output: %v", err)
	}
	return n
}

func TestRender_ProducesSinglePagePDF(t *testing.T) {
	for _, n := range []int{1, 2, 5, 30} {
		t.Run(fmt.Sprintf("%d problems", n), func(t *testing.T) {
			out, err := render.NewRenderer().Render(context.Background(), problemLines(n), render.Metadata{
				Title: "Math Worksheet",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !bytes.HasPrefix(out, []byte("%PDF-")) {
				t.Fatalf("expected PDF header, got %q", out[:min(len(out), 8)])
			}
			if got := pageCount(t, out); got != 1 {
				t.Errorf("expected 1 page, got %d", got)
			}
		})
	}
}

func TestRender_WritesEveryLine(t *testing.T) {
	r := render.NewRenderer()
	r.Compress = false

	lines := []string{"0 x 3 = ___", "8 x 3 = ___", "10 x 4 = ___"}
	out, err := r.Render(context.Background(), lines, render.Metadata{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, line := range lines {
		if !bytes.Contains(out, []byte(line)) {
			t.Errorf("expected output to contain %q", line)
		}
	}
	if !bytes.Contains(out, []byte(render.FontFamily)) {
		t.Errorf("expected output to reference the %s font", render.FontFamily)
	}
}

// Content stream operators are in points with y measured from the bottom
// edge, so they can be checked against the layout directly.
func TestRender_PlacesTextFromLayout(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{
			name:  "single problem uses the fixed font size at the top left",
			count: 1,
			want:  []string{"24.00 Tf", "BT 51.02 790.87 Td (2 x 7 = ___) Tj ET"},
		},
		{
			name:  "three problems fill the left column first",
			count: 3,
			want: []string{
				"246.61 Tf",
				"BT 51.02 790.87 Td (2 x 7 = ___) Tj ET",
				"BT 51.02 297.64 Td (3 x 7 = ___) Tj ET",
				"BT 314.65 790.87 Td (4 x 7 = ___) Tj ET",
			},
		},
		{
			name:  "full sheet spaces rows 18mm apart",
			count: 30,
			want: []string{
				"25.51 Tf",
				"BT 51.02 790.87 Td (2 x 7 = ___) Tj ET",
				"BT 51.02 739.84 Td (3 x 7 = ___) Tj ET",
				"BT 51.02 76.54 Td",
				"BT 314.65 790.87 Td",
				"BT 314.65 76.54 Td",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := render.NewRenderer()
			r.Compress = false

			out, err := r.Render(context.Background(), problemLines(tt.count), render.Metadata{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, want := range tt.want {
				if !bytes.Contains(out, []byte(want)) {
					t.Errorf("expected content stream to contain %q", want)
				}
			}
		})
	}
}

func TestRender_StableForFixedTimestamp(t *testing.T) {
	meta := render.Metadata{
		Title:     "Math Worksheet",
		Subject:   "Tables 2, 3",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	lines := problemLines(12)

	a, err := render.NewRenderer().Render(context.Background(), lines, meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := render.NewRenderer().Render(context.Background(), lines, meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("expected identical output for identical input")
	}
}

func TestRender_NoLines(t *testing.T) {
	_, err := render.NewRenderer().Render(context.Background(), nil, render.Metadata{})

	if !errors.Is(err, render.ErrNoLines) {
		t.Errorf("expected ErrNoLines, got %v", err)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := render.NewRenderer().Render(ctx, problemLines(4), render.Metadata{})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Error("expected no output for a cancelled render")
	}
}
