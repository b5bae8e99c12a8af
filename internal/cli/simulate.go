package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathsheet/backend/internal/domain/worksheet"
	"github.com/mathsheet/backend/internal/generator"
	"github.com/mathsheet/backend/internal/simulation"
)

func newSimulateCmd() *cobra.Command {
	var (
		tables []int
		count  int
		runs   int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Audit the problem generator",
		Long:  `Generate many worksheets without rendering them and report how often each multiplier occurs and whether any generation rule was broken.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var n *int
			if cmd.Flags().Changed("count") {
				n = &count
			}
			config, err := worksheet.NewConfig(tables, n)
			if err != nil {
				return err
			}
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1, got %d", runs)
			}

			gen := generator.New()
			if cmd.Flags().Changed("seed") {
				gen = generator.NewSeeded(seed)
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			report := simulation.Run(gen, config, runs)
			report.Print(cmd.OutOrStdout())
			prog.done(fmt.Sprintf("Simulated %d worksheets", report.Runs))

			if report.Violations > 0 {
				return fmt.Errorf("generator broke its rules in %d of %d runs", report.Violations, report.Runs)
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&tables, "tables", "t", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, "tables to practice")
	cmd.Flags().IntVarP(&count, "count", "n", worksheet.DefaultCount, "problems per worksheet")
	cmd.Flags().IntVar(&runs, "runs", 1000, "worksheets to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible run")

	return cmd
}
