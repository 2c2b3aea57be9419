package main

import (
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/japaniel/alveare/pkg/db"
	"github.com/japaniel/alveare/pkg/dictionary"
	"github.com/japaniel/alveare/pkg/lexicon"
)

func newLexiconCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Build, export and inspect the word lexicon",
	}
	cmd.AddCommand(
		newLexiconBuildCmd(opts),
		newLexiconExportCmd(opts),
		newLexiconFetchCmd(opts),
		newLexiconHarvestCmd(opts),
		newLexiconStatsCmd(opts),
	)
	return cmd
}

func newLexiconBuildCmd(opts *globalOptions) *cobra.Command {
	var in lexicon.BuildInput
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the lexicon from a hunspell dictionary and word lists",
		Long: `Build the lexicon into the database given by --db. Whitelisted words are
always accepted, blacklisted words never.

Examples:
  alveare lexicon build --dic it_IT.dic --whitelist whitelist.txt --blacklist blacklist.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := opts.openDB()
			if err != nil {
				return err
			}
			defer conn.Close()

			in.Logger = opts.logger(cmd)
			stats, err := lexicon.Build(cmd.Context(), conn, in)
			if err != nil {
				return fmt.Errorf("lexicon build failed: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Build summary:")
			fmt.Fprintf(out, "  dict_entries: %d\n", stats.DictEntries)
			fmt.Fprintf(out, "  whitelist_entries: %d\n", stats.WhitelistEntries)
			fmt.Fprintf(out, "  blacklist_entries: %d\n", stats.BlacklistEntries)
			fmt.Fprintf(out, "  tokens_examined: %d\n", stats.TokensExamined)
			fmt.Fprintf(out, "  accepted_whitelist: %d\n", stats.AcceptedWhitelist)
			fmt.Fprintf(out, "  accepted_dictionary: %d\n", stats.AcceptedDictionary)
			fmt.Fprintf(out, "  excluded_blacklist: %d\n", stats.ExcludedBlacklist)
			fmt.Fprintf(out, "  rows_written: %d\n", stats.RowsWritten)
			fmt.Fprintf(out, "Wrote %d entries to %s\n", stats.RowsWritten, opts.dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.DicPath, "dic", "", "Hunspell .dic file (required)")
	cmd.Flags().StringVar(&in.WhitelistPath, "whitelist", "", "Words always accepted, one per line")
	cmd.Flags().StringVar(&in.BlacklistPath, "blacklist", "", "Words never accepted, one per line")
	cmd.Flags().IntVar(&in.MinLen, "min-len", lexicon.DefaultMinLen, "Shortest word kept")
	cmd.Flags().IntVar(&in.BatchSize, "batch-size", 500, "Words committed per transaction")
	_ = cmd.MarkFlagRequired("dic")
	return cmd
}

func newLexiconExportCmd(opts *globalOptions) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the lexicon as a JSON array of words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := opts.openDB()
			if err != nil {
				return err
			}
			defer conn.Close()

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			n, err := lexicon.Export(conn, w)
			if err != nil {
				return err
			}
			if outPath != "" {
				info, err := os.Stat(outPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s (%d bytes)\n", n, outPath, info.Size())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func newLexiconFetchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the word list given by --lexicon from --lexicon-url",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dictionary.NewDownloader()
			d.Logger = opts.logger(cmd)
			if err := d.EnsureLexicon(cmd.Context(), opts.lexicon, opts.lexiconURL); err != nil {
				return err
			}
			words, err := dictionary.LoadWordList(opts.lexicon)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lexicon %s holds %d words\n", opts.lexicon, len(words))
			return nil
		},
	}
}

func newLexiconHarvestCmd(opts *globalOptions) *cobra.Command {
	var (
		minLen int
		add    bool
	)
	cmd := &cobra.Command{
		Use:   "harvest URL...",
		Short: "List article words missing from the lexicon",
		Long: `Fetch articles, extract their readable text and list the words the
lexicon does not know yet. With --add they are stored with source "harvest".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := opts.openDB()
			if err != nil {
				return err
			}
			defer conn.Close()

			idx, err := lexicon.LoadIndex(conn)
			if err != nil {
				return err
			}
			d := dictionary.NewDownloader()
			out := cmd.OutOrStdout()
			for _, u := range args {
				h, err := dictionary.HarvestURL(cmd.Context(), d.Client, u, minLen)
				if err != nil {
					return err
				}
				unknown := h.Unknown(idx)
				fmt.Fprintf(out, "%s: %d words, %d unknown\n", h.Title, len(h.Words), len(unknown))
				for _, w := range unknown {
					fmt.Fprintf(out, "  %s (%d)\n", w, h.Counts[w])
				}
				if add {
					n, err := lexicon.AddHarvested(conn, unknown)
					if err != nil {
						return err
					}
					idx.Add(unknown...)
					fmt.Fprintf(out, "Added %d words\n", n)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&minLen, "min-len", 4, "Shortest word reported")
	cmd.Flags().BoolVar(&add, "add", false, "Store unknown words in the lexicon")
	return cmd
}

func newLexiconStatsCmd(opts *globalOptions) *cobra.Command {
	var (
		center  string
		letters string
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count lexicon words by source, or the words fitting a hive",
		Long: `Count lexicon words by source. With --center, list the words containing the
center letter; adding --letters keeps only those spelled with center and letters.

Examples:
  alveare lexicon stats
  alveare lexicon stats --center s --letters hoabmf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := opts.openDB()
			if err != nil {
				return err
			}
			defer conn.Close()
			out := cmd.OutOrStdout()

			if center == "" {
				counts, err := db.CountWordsBySource(conn)
				if err != nil {
					return err
				}
				sources := make([]string, 0, len(counts))
				total := 0
				for s, n := range counts {
					sources = append(sources, s)
					total += n
				}
				sort.Strings(sources)
				for _, s := range sources {
					fmt.Fprintf(out, "%s: %d\n", s, counts[s])
				}
				fmt.Fprintf(out, "total: %d\n", total)
				return nil
			}

			if utf8.RuneCountInString(center) != 1 {
				return fmt.Errorf("--center must be a single letter, got %q", center)
			}
			idx, err := lexicon.LoadIndex(conn)
			if err != nil {
				return err
			}
			c, _ := utf8.DecodeRuneInString(center)
			var words []string
			if letters == "" {
				words = idx.WithLetter(c)
			} else {
				words = idx.Within(c, center+letters)
			}
			for _, w := range words {
				fmt.Fprintln(out, w)
			}
			fmt.Fprintf(out, "%d words\n", len(words))
			return nil
		},
	}
	cmd.Flags().StringVar(&center, "center", "", "Center letter")
	cmd.Flags().StringVar(&letters, "letters", "", "Outer letters")
	return cmd
}
