package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathsheet/backend/internal/domain/worksheet"
	"github.com/mathsheet/backend/internal/generator"
	"github.com/mathsheet/backend/internal/render"
	"github.com/mathsheet/backend/internal/service"
	"github.com/mathsheet/backend/internal/worker"
)

type generateOptions struct {
	tables  []int
	count   int
	output  string
	seed    uint64
	copies  int
	workers int
	title   string
	print   bool
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write worksheet PDFs",
		Long: `Generate one or more worksheets for the selected tables.

With --copies N each copy is written next to --output with a numeric
suffix (worksheet-1.pdf, worksheet-2.pdf, ...).`,
		Example: `  worksheet generate -t 7 -n 5
  worksheet generate -t 2,3,4 --copies 10 -o out/sheet.pdf --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var count *int
			if cmd.Flags().Changed("count") {
				count = &opts.count
			}
			gen := generator.New()
			if cmd.Flags().Changed("seed") {
				gen = generator.NewSeeded(opts.seed)
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), gen, count, opts)
		},
	}

	cmd.Flags().IntSliceVarP(&opts.tables, "tables", "t", nil, "tables to practice, 1-10 (required)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", worksheet.DefaultCount, "problems per worksheet, clamped to 1-30")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "worksheet.pdf", "output file")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible worksheets")
	cmd.Flags().IntVar(&opts.copies, "copies", 1, "number of different worksheets to write")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "concurrent renders")
	cmd.Flags().StringVar(&opts.title, "title", "Math Worksheet", "PDF document title")
	cmd.Flags().BoolVar(&opts.print, "print", false, "also print the problems to stdout")
	cmd.MarkFlagRequired("tables")

	return cmd
}

func runGenerate(ctx context.Context, stdout io.Writer, gen generator.Generator, count *int, opts generateOptions) error {
	logger := loggerFromContext(ctx)

	config, err := worksheet.NewConfig(opts.tables, count)
	if err != nil {
		return err
	}
	if opts.copies < 1 {
		return fmt.Errorf("--copies must be at least 1, got %d", opts.copies)
	}

	svc := service.NewWorksheetService(gen, render.NewRenderer(), nil, opts.title, slogFromContext(ctx))
	prog := newProgress(logger)

	// Generate sequentially so a seed maps to the same files every time.
	sheets := make(map[string]*worksheet.Worksheet, opts.copies)
	paths := make(map[string]string, opts.copies)
	order := make([]string, 0, opts.copies)
	for i := 1; i <= opts.copies; i++ {
		ws := svc.Generate(config)
		sheets[ws.ID] = ws
		paths[ws.ID] = outputPath(opts.output, i, opts.copies)
		order = append(order, ws.ID)

		if opts.print {
			printWorksheet(stdout, ws, paths[ws.ID])
		}
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	pool := worker.NewPool[[]byte](opts.workers, opts.copies)
	defer pool.Close()

	for _, wsID := range order {
		ws := sheets[wsID]
		if err := pool.Submit(ctx, wsID, func(ctx context.Context) ([]byte, error) {
			return svc.Render(ctx, ws)
		}); err != nil {
			return err
		}
	}

	var firstErr error
	for range order {
		res := <-pool.Results()
		if res.Err != nil {
			logger.Error("render failed", "worksheet", res.JobID, "err", res.Err)
			firstErr = keepFirst(firstErr, res.Err)
			continue
		}
		path := paths[res.JobID]
		if err := os.WriteFile(path, res.Output, 0o644); err != nil {
			firstErr = keepFirst(firstErr, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		logger.Debug("wrote worksheet", "path", path, "bytes", len(res.Output))
	}
	if firstErr != nil {
		return firstErr
	}

	prog.done(fmt.Sprintf("Wrote %d worksheet(s) with %d problems", opts.copies, config.Count))
	return nil
}

func printWorksheet(w io.Writer, ws *worksheet.Worksheet, path string) {
	fmt.Fprintf(w, "# %s\n", path)
	for i, line := range ws.Lines() {
		fmt.Fprintf(w, "%2d. %s\n", i+1, line)
	}
}

// outputPath returns base for a single copy and base-N.ext otherwise.
func outputPath(base string, n, copies int) string {
	if copies == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + strconv.Itoa(n) + ext
}

func keepFirst(first, err error) error {
	if first != nil {
		return first
	}
	return err
}
