package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/japaniel/alveare/pkg/alveare"
	"github.com/japaniel/alveare/pkg/game"
)

const playHelp = "Commands: help, shuffle, list, score, giveup, quit"

func newPlayCmd(opts *globalOptions) *cobra.Command {
	var (
		bo   boardOptions
		lang string
		save bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a board in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, board, err := bo.board(cmd, opts)
			if err != nil {
				return err
			}
			msgs := game.NewLocalizer(lang)

			s := game.NewSession(gen, board, msgs)
			var persist func() error
			if save {
				conn, err := opts.openDB()
				if err != nil {
					return err
				}
				defer conn.Close()
				if s, err = game.ResumeLatest(conn, gen, board, msgs); err != nil {
					return err
				}
				persist = func() error { return s.Save(conn) }
			}
			return playLoop(cmd, s, persist)
		},
	}
	bo.register(cmd)
	cmd.Flags().StringVar(&lang, "lang", "it", "Message language (it, en)")
	cmd.Flags().BoolVar(&save, "save", false, "Resume and save progress in the database given by --db")
	return cmd
}

func printScore(cmd *cobra.Command, s *game.Session) {
	p := s.Progress()
	line := fmt.Sprintf("Found %d/%d   Score %d / %d   %s", p.Found, p.TotalWords, p.Score, p.Threshold, p.Rank)
	if p.Score < p.Threshold {
		line += "   " + s.Messages().PointsToGoal(p.Threshold-p.Score)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}

func playLoop(cmd *cobra.Command, s *game.Session, persist func() error) error {
	out := cmd.OutOrStdout()
	shuffler := alveare.NewRand(s.Board.Seed)

	printLetters(out, s.Board.Center, s.Outer())
	printScore(cmd, s)

	ctx := cmd.Context()
	sc := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out, "\nGoodbye")
			return sc.Err()
		}
		if ctx != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		text := strings.TrimSpace(sc.Text())
		switch text {
		case "":
			continue
		case "help":
			fmt.Fprintln(out, playHelp)
		case "shuffle":
			printLetters(out, s.Board.Center, s.Shuffle(shuffler))
		case "list":
			fmt.Fprintln(out, "Found:")
			for _, w := range s.Found() {
				fmt.Fprintln(out, w)
			}
		case "score":
			printScore(cmd, s)
		case "giveup":
			fmt.Fprintln(out, "All words:")
			for _, w := range s.Board.ValidWords {
				fmt.Fprintln(out, w, s.Board.Scores[w])
			}
			return nil
		case "quit":
			fmt.Fprintln(out, "Bye")
			return nil
		default:
			wasWon := s.Won()
			res := s.Guess(text)
			if !res.OK() {
				fmt.Fprintln(out, res.Message)
				continue
			}
			fmt.Fprintf(out, "+%d %s\n", res.Points, res.Message)
			if !wasWon && s.Won() {
				fmt.Fprintln(out, s.Messages().GoalReached())
			}
			if persist != nil {
				if err := persist(); err != nil {
					return err
				}
			}
		}
	}
}
