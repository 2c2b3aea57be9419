package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// UpsertWord inserts a lexicon word, replacing the mask and source of an existing row.
func UpsertWord(db DBExecutor, w LexiconWord) error {
	form := strings.TrimSpace(w.CleanForm)
	if form == "" {
		return fmt.Errorf("word must be non-empty")
	}
	_, err := db.Exec(`INSERT INTO words (clean_form, mask, source) VALUES (?, ?, ?)
		ON CONFLICT(clean_form) DO UPDATE SET mask = excluded.mask, source = excluded.source`,
		form, int64(w.Mask), w.Source)
	if err != nil {
		return fmt.Errorf("upsert word: %w", err)
	}
	return nil
}

// AddWord inserts a lexicon word unless it already exists. It reports whether a row was added.
func AddWord(db DBExecutor, w LexiconWord) (bool, error) {
	form := strings.TrimSpace(w.CleanForm)
	if form == "" {
		return false, fmt.Errorf("word must be non-empty")
	}
	res, err := db.Exec(`INSERT OR IGNORE INTO words (clean_form, mask, source) VALUES (?, ?, ?)`,
		form, int64(w.Mask), w.Source)
	if err != nil {
		return false, fmt.Errorf("add word: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ClearWords removes every lexicon word.
func ClearWords(db DBExecutor) error {
	_, err := db.Exec(`DELETE FROM words`)
	return err
}

// ClearStagedWords empties the staging table a lexicon build writes into.
func ClearStagedWords(db DBExecutor) error {
	_, err := db.Exec(`DELETE FROM words_staging`)
	return err
}

// StageWord writes w to the staging table. Staged words are invisible to
// readers until PromoteStagedWords runs.
func StageWord(db DBExecutor, w LexiconWord) error {
	form := strings.TrimSpace(w.CleanForm)
	if form == "" {
		return fmt.Errorf("word must be non-empty")
	}
	_, err := db.Exec(`INSERT OR REPLACE INTO words_staging (clean_form, mask, source) VALUES (?, ?, ?)`,
		form, int64(w.Mask), w.Source)
	if err != nil {
		return fmt.Errorf("stage word: %w", err)
	}
	return nil
}

// PromoteStagedWords replaces the words table with the staged words and
// empties the staging table. Run it inside a transaction.
func PromoteStagedWords(db DBExecutor) (int, error) {
	if err := ClearWords(db); err != nil {
		return 0, err
	}
	res, err := db.Exec(`INSERT INTO words (clean_form, mask, source)
		SELECT clean_form, mask, source FROM words_staging`)
	if err != nil {
		return 0, fmt.Errorf("promote words: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), ClearStagedWords(db)
}

// ListWords returns every lexicon word ordered by clean form. This is the
// order the generator and the JSON export see.
func ListWords(db DBExecutor) ([]string, error) {
	rows, err := db.Query(`SELECT clean_form FROM words ORDER BY clean_form`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountWordsBySource returns the number of lexicon words per source.
func CountWordsBySource(db DBExecutor) (map[string]int, error) {
	rows, err := db.Query(`SELECT source, COUNT(*) FROM words GROUP BY source`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		out[source] = n
	}
	return out, rows.Err()
}

// SetMeta stores a provenance value.
func SetMeta(db DBExecutor, key, value string) error {
	_, err := db.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// GetMeta returns a provenance value, or sql.ErrNoRows.
func GetMeta(db DBExecutor, key string) (string, error) {
	var value sql.NullString
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value); err != nil {
		return "", err
	}
	return value.String, nil
}

// SaveBoard archives a board, replacing any earlier board for the same seed.
func SaveBoard(db DBExecutor, b BoardRecord) error {
	outer, err := json.Marshal(b.Outer)
	if err != nil {
		return err
	}
	words, err := json.Marshal(b.Words)
	if err != nil {
		return err
	}
	scores, err := json.Marshal(b.Scores)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO boards (seed, center, outer_letters, words, scores, total_points, threshold, pangrams, pangram_relaxed, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(seed) DO UPDATE SET
	  center = excluded.center,
	  outer_letters = excluded.outer_letters,
	  words = excluded.words,
	  scores = excluded.scores,
	  total_points = excluded.total_points,
	  threshold = excluded.threshold,
	  pangrams = excluded.pangrams,
	  pangram_relaxed = excluded.pangram_relaxed`,
		b.Seed, b.Center, string(outer), string(words), string(scores), b.TotalPoints, b.Threshold, b.Pangrams, b.PangramRelaxed, time.Now())
	if err != nil {
		return fmt.Errorf("save board %d: %w", b.Seed, err)
	}
	return nil
}

// GetBoard loads an archived board, or returns sql.ErrNoRows.
func GetBoard(db DBExecutor, seed int64) (*BoardRecord, error) {
	var b BoardRecord
	var outer, words, scores string
	var created sql.NullTime
	err := db.QueryRow(`SELECT seed, center, outer_letters, words, scores, total_points, threshold, pangrams, pangram_relaxed, created_at
		FROM boards WHERE seed = ?`, seed).
		Scan(&b.Seed, &b.Center, &outer, &words, &scores, &b.TotalPoints, &b.Threshold, &b.Pangrams, &b.PangramRelaxed, &created)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(outer), &b.Outer); err != nil {
		return nil, fmt.Errorf("decode outer letters: %w", err)
	}
	if err := json.Unmarshal([]byte(words), &b.Words); err != nil {
		return nil, fmt.Errorf("decode words: %w", err)
	}
	if err := json.Unmarshal([]byte(scores), &b.Scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if created.Valid {
		b.CreatedAt = created.Time
	}
	return &b, nil
}

// CountBoards returns the number of archived boards.
func CountBoards(db DBExecutor) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM boards`).Scan(&n)
	return n, err
}

// SaveSession stores player progress, replacing the previous save of the same session.
func SaveSession(db DBExecutor, s SessionRecord) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("session id must be non-empty")
	}
	found, err := json.Marshal(s.Found)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO sessions (id, seed, found, score, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET seed = excluded.seed, found = excluded.found, score = excluded.score, updated_at = excluded.updated_at`,
		s.ID, s.Seed, string(found), s.Score, time.Now())
	if err != nil {
		return fmt.Errorf("save session %s: %w", s.ID, err)
	}
	return nil
}

// GetSession loads saved progress, or returns sql.ErrNoRows.
func GetSession(db DBExecutor, id string) (*SessionRecord, error) {
	var s SessionRecord
	var found string
	var updated sql.NullTime
	err := db.QueryRow(`SELECT id, seed, found, score, updated_at FROM sessions WHERE id = ?`, id).
		Scan(&s.ID, &s.Seed, &found, &s.Score, &updated)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(found), &s.Found); err != nil {
		return nil, fmt.Errorf("decode found words: %w", err)
	}
	if updated.Valid {
		s.UpdatedAt = updated.Time
	}
	return &s, nil
}

// LatestSession returns the most recently saved session for seed, or sql.ErrNoRows.
func LatestSession(db DBExecutor, seed int64) (*SessionRecord, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM sessions WHERE seed = ? ORDER BY updated_at DESC, rowid DESC LIMIT 1`, seed).Scan(&id)
	if err != nil {
		return nil, err
	}
	return GetSession(db, id)
}
