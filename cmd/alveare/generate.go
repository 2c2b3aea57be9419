package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/japaniel/alveare/pkg/alveare"
	"github.com/japaniel/alveare/pkg/batch"
	"github.com/japaniel/alveare/pkg/db"
)

type boardOptions struct {
	seed      int64
	daily     bool
	noPangram bool
}

func (b *boardOptions) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&b.seed, "seed", 0, "Board seed (defaults to today's daily seed)")
	cmd.Flags().BoolVar(&b.daily, "daily", false, "Use the daily seed for today (UTC)")
	cmd.Flags().BoolVar(&b.noPangram, "no-pangram", false, "Do not require a pangram on the board")
}

// resolveSeed picks the requested seed, or the daily one when --seed is unset.
func (b *boardOptions) resolveSeed(cmd *cobra.Command, now time.Time) (int64, error) {
	seedSet := cmd.Flags().Changed("seed")
	if seedSet && b.daily {
		return 0, errors.New("--seed and --daily are mutually exclusive")
	}
	if seedSet {
		return b.seed, nil
	}
	return alveare.DailySeed(now), nil
}

func (b *boardOptions) board(cmd *cobra.Command, opts *globalOptions) (*alveare.Generator, *alveare.Board, error) {
	seed, err := b.resolveSeed(cmd, time.Now())
	if err != nil {
		return nil, nil, err
	}
	dict, err := opts.dictionary(cmd.Context(), cmd)
	if err != nil {
		return nil, nil, err
	}
	gen, err := opts.generator(cmd)
	if err != nil {
		return nil, nil, err
	}
	board, err := gen.Generate(seed, dict, !b.noPangram)
	if err != nil {
		return nil, nil, fmt.Errorf("generation failed: %w", err)
	}
	return gen, board, nil
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	var (
		bo       boardOptions
		asJSON   bool
		saveToDB bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a board",
		Long: `Generate the board for a seed and print its letters, words and goal.

Examples:
  alveare generate --daily
  alveare generate --seed 42 --no-pangram
  alveare generate --seed 100000 --json --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, board, err := bo.board(cmd, opts)
			if err != nil {
				return err
			}
			if saveToDB {
				conn, err := opts.openDB()
				if err != nil {
					return err
				}
				defer conn.Close()
				if err := db.SaveBoard(conn, batch.ToRecord(board)); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(board)
			}
			printBoard(out, board)
			return nil
		},
	}
	bo.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the board as JSON")
	cmd.Flags().BoolVar(&saveToDB, "save", false, "Archive the board in the database given by --db")
	return cmd
}

func printBoard(w io.Writer, b *alveare.Board) {
	fmt.Fprintf(w, "Seed: %d\n", b.Seed)
	printLetters(w, b.Center, b.Outer)
	fmt.Fprintf(w, "Words: %d   Points: %d   Goal: %d\n", len(b.ValidWords), b.TotalPoints, b.Threshold)
	if len(b.Pangrams) > 0 {
		fmt.Fprintf(w, "Pangrams: %s\n", strings.Join(b.Pangrams, ", "))
	}
	if b.PangramRelaxed {
		fmt.Fprintln(w, "No pangram board found; pangram requirement relaxed.")
	}
}
