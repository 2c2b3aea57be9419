package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/japaniel/alveare/pkg/alveare"
	"github.com/japaniel/alveare/pkg/batch"
)

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var (
		iterations int
		workers    int
		start      int64
		store      bool
		noPangram  bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate many boards and report pangram statistics",
		Long: `Generate boards for consecutive seeds and report how many words and
pangrams they carry.

Examples:
  alveare analyze --iterations 1000
  alveare analyze --start 100000 --iterations 365 --store`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("--iterations must be positive, got %d", iterations)
			}
			dict, err := opts.dictionary(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			gen, err := opts.generator(cmd)
			if err != nil {
				return err
			}

			r := batch.NewRunner(gen, dict)
			r.Workers = workers
			r.RequirePangram = !noPangram
			r.Logger = opts.logger(cmd)
			if r.Logger != nil {
				r.OnProgress = func(done, total int) {
					if done%100 == 0 || done == total {
						r.Logger.Printf("progress: %d/%d boards", done, total)
					}
				}
			}
			if store {
				conn, err := opts.openDB()
				if err != nil {
					return err
				}
				defer conn.Close()
				r.DB = conn
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Analyzing %d boards from seed %d...\n\n", iterations, start)
			results, err := r.Run(cmd.Context(), batch.Seeds(start, iterations))
			if err != nil {
				return err
			}
			return batch.Analyze(results).Report(cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1000, "Number of boards to generate")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Concurrent generator workers")
	cmd.Flags().Int64Var(&start, "start", alveare.DailySeedBase, "First seed")
	cmd.Flags().BoolVar(&store, "store", false, "Archive every board in the database given by --db")
	cmd.Flags().BoolVar(&noPangram, "no-pangram", false, "Do not require a pangram on the boards")
	return cmd
}
