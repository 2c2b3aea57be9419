package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/japaniel/alveare/pkg/alveare"
	"github.com/japaniel/alveare/pkg/db"
	"github.com/japaniel/alveare/pkg/dictionary"
	"github.com/japaniel/alveare/pkg/lexicon"
)

// globalOptions are the flags shared by every command.
type globalOptions struct {
	dbPath     string
	lexicon    string
	lexiconURL string
	fraction   float64
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   "alveare",
		Short: "Italian letter-hive word puzzles",
		Long: `alveare generates and plays letter-hive word puzzles: seven letters, one of
them mandatory, and every dictionary word that can be spelled with them.

Examples:
  alveare generate --daily
  alveare generate --seed 100000 --json
  alveare play --seed 100000
  alveare analyze --iterations 1000`,
		Version:       alveare.Version(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dbPath, "db", "alveare.db", "Path to SQLite database")
	pf.StringVar(&opts.lexicon, "lexicon", "words.json", "Word list: a JSON array or an SQLite lexicon (.sqlite, .db)")
	pf.StringVar(&opts.lexiconURL, "lexicon-url", "", "Download the word list from this URL when it is missing")
	pf.Float64Var(&opts.fraction, "fraction", 0.55, "Share of the total points needed to complete a board")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.AddCommand(
		newGenerateCmd(opts),
		newPlayCmd(opts),
		newAnalyzeCmd(opts),
		newLexiconCmd(opts),
	)
	return rootCmd
}

func (o *globalOptions) logger(cmd *cobra.Command) *log.Logger {
	if !o.verbose {
		return nil
	}
	return log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
}

func (o *globalOptions) generator(cmd *cobra.Command) (*alveare.Generator, error) {
	gen, err := alveare.New(alveare.DefaultConfig(o.fraction))
	if err != nil {
		return nil, err
	}
	gen.Logger = o.logger(cmd)
	return gen, nil
}

func (o *globalOptions) openDB() (*sql.DB, error) {
	conn, err := db.Open(o.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", o.dbPath, err)
	}
	return conn, nil
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sqlite", ".sqlite3", ".db":
		return true
	}
	return false
}

// dictionary loads the word list the generator runs on, downloading it
// first when it is missing and a URL is configured.
func (o *globalOptions) dictionary(ctx context.Context, cmd *cobra.Command) ([]string, error) {
	if isSQLite(o.lexicon) {
		conn, err := db.Open(o.lexicon)
		if err != nil {
			return nil, fmt.Errorf("failed to open lexicon %s: %w", o.lexicon, err)
		}
		defer conn.Close()
		return lexicon.Load(conn)
	}

	d := dictionary.NewDownloader()
	d.Logger = o.logger(cmd)
	if err := d.EnsureLexicon(ctx, o.lexicon, o.lexiconURL); err != nil {
		return nil, err
	}
	words, err := dictionary.LoadWordList(o.lexicon)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon %s: %w", o.lexicon, err)
	}
	return words, nil
}

func printLetters(w io.Writer, center string, outer []string) {
	fmt.Fprintf(w, "[%s]  %s\n", strings.ToUpper(center), strings.Join(outer, " "))
}
