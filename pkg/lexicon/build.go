// Package lexicon builds the playable word list into SQLite and exports it
// for the board generator.
package lexicon

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/japaniel/alveare/pkg/batch"
	"github.com/japaniel/alveare/pkg/db"
	"github.com/japaniel/alveare/pkg/dictionary"
)

// DefaultMinLen is the shortest word kept in the lexicon. Shorter words can
// never be played, but keeping them costs little and matches the source lists.
const DefaultMinLen = 2

// BuildInput names the files a lexicon is built from. Only DicPath is
// required.
type BuildInput struct {
	DicPath       string // hunspell .dic, the authoritative dictionary
	WhitelistPath string // words accepted even when the dictionary lacks them
	BlacklistPath string // words never accepted

	// Candidates is the token stream examined by the build. When nil, the
	// dictionary words followed by the whitelist words are used.
	Candidates []string

	MinLen    int
	BatchSize int
	Logger    *log.Logger
}

// BuildStats counts what the build saw and wrote.
type BuildStats struct {
	DictEntries        int
	WhitelistEntries   int
	BlacklistEntries   int
	TokensExamined     int
	AcceptedWhitelist  int
	AcceptedDictionary int
	ExcludedBlacklist  int
	RowsWritten        int
}

// Build replaces the words table of conn with the accepted candidates and
// records provenance in the meta table. The replacement is atomic: on error
// the previous words and provenance are kept. A blacklisted word is always
// excluded; a whitelisted word is accepted with source "whitelist" even when
// it is also in the dictionary.
func Build(ctx context.Context, conn *sql.DB, in BuildInput) (BuildStats, error) {
	var stats BuildStats
	if in.DicPath == "" {
		return stats, fmt.Errorf("dictionary path is required")
	}
	minLen := in.MinLen
	if minLen <= 0 {
		minLen = DefaultMinLen
	}

	dict, err := readWords(in.DicPath, minLen, dictionary.ParseDic)
	if err != nil {
		return stats, fmt.Errorf("read dictionary: %w", err)
	}
	whitelist, err := readWords(in.WhitelistPath, minLen, dictionary.ParseList)
	if err != nil {
		return stats, fmt.Errorf("read whitelist: %w", err)
	}
	blacklist, err := readWords(in.BlacklistPath, minLen, dictionary.ParseList)
	if err != nil {
		return stats, fmt.Errorf("read blacklist: %w", err)
	}
	stats.DictEntries = len(dict)
	stats.WhitelistEntries = len(whitelist)
	stats.BlacklistEntries = len(blacklist)

	inDict := mapset.Of(dict...)
	inWhitelist := mapset.Of(whitelist...)
	inBlacklist := mapset.Of(blacklist...)

	candidates := in.Candidates
	if candidates == nil {
		candidates = make([]string, 0, len(dict)+len(whitelist))
		candidates = append(candidates, dict...)
		for _, w := range whitelist {
			if !inDict.Has(w) {
				candidates = append(candidates, w)
			}
		}
	}

	// Words go to a staging table in batches and replace the live table in
	// one transaction at the end, so a failed build keeps the old lexicon.
	if err := db.ClearStagedWords(conn); err != nil {
		return stats, err
	}
	bw := batch.NewBatchWriter(conn, in.BatchSize, 0)
	seen := mapset.New[string]()
	for _, tok := range candidates {
		if err := ctx.Err(); err != nil {
			bw.Close()
			return stats, err
		}
		stats.TokensExamined++
		w := dictionary.Normalize(tok)
		if !dictionary.IsAlpha(w) || len([]rune(w)) < minLen || seen.Has(w) {
			continue
		}
		seen.Put(w)

		if inBlacklist.Has(w) {
			stats.ExcludedBlacklist++
			continue
		}
		var source string
		switch {
		case inWhitelist.Has(w):
			source = db.SourceWhitelist
			stats.AcceptedWhitelist++
		case inDict.Has(w):
			source = db.SourceDictionary
			stats.AcceptedDictionary++
		default:
			continue
		}

		word := db.LexiconWord{CleanForm: w, Mask: dictionary.Mask(w), Source: source}
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			return db.StageWord(tx, word)
		}); err != nil {
			bw.Close()
			return stats, err
		}
	}
	if err := bw.Close(); err != nil {
		return stats, fmt.Errorf("write words: %w", err)
	}

	rows, err := promote(ctx, conn, in, minLen)
	if err != nil {
		return stats, err
	}
	stats.RowsWritten = rows
	if in.Logger != nil {
		in.Logger.Printf("lexicon build: %d dictionary, %d whitelist, %d blacklist entries; %d tokens examined; wrote %d rows",
			stats.DictEntries, stats.WhitelistEntries, stats.BlacklistEntries, stats.TokensExamined, stats.RowsWritten)
	}
	return stats, nil
}

func readWords(path string, minLen int, parse func(io.Reader, int) ([]string, error)) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f, minLen)
}

// fileSHA256 returns the hex digest of the file at path, or "" for no path.
func fileSHA256(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// promote swaps the staged words into the live table and records provenance
// in a single transaction.
func promote(ctx context.Context, conn *sql.DB, in BuildInput, minLen int) (int, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	rows, err := db.PromoteStagedWords(tx)
	if err != nil {
		return 0, err
	}
	if err := writeProvenance(tx, in, minLen); err != nil {
		return 0, err
	}
	return rows, tx.Commit()
}

func writeProvenance(tx *sql.Tx, in BuildInput, minLen int) error {
	for _, f := range []struct{ key, path string }{
		{"dict", in.DicPath},
		{"whitelist", in.WhitelistPath},
		{"blacklist", in.BlacklistPath},
	} {
		sum, err := fileSHA256(f.path)
		if err != nil {
			return fmt.Errorf("hash %s: %w", f.key, err)
		}
		if err := db.SetMeta(tx, f.key+"_path", f.path); err != nil {
			return err
		}
		if err := db.SetMeta(tx, f.key+"_sha256", sum); err != nil {
			return err
		}
	}
	if err := db.SetMeta(tx, "min_len", strconv.Itoa(minLen)); err != nil {
		return err
	}
	return db.SetMeta(tx, "build_ts_utc", time.Now().UTC().Format(time.RFC3339))
}
