package lexicon

import (
	"database/sql"
	"fmt"

	"github.com/japaniel/alveare/pkg/db"
	"github.com/japaniel/alveare/pkg/dictionary"
)

// AddHarvested stores words found in articles with source "harvest". Words
// already in the lexicon keep their source. It returns the number of new rows.
func AddHarvested(conn *sql.DB, words []string) (int, error) {
	tx, err := conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	added := 0
	for _, w := range words {
		w = dictionary.Normalize(w)
		if !dictionary.IsAlpha(w) {
			continue
		}
		ok, err := db.AddWord(tx, db.LexiconWord{CleanForm: w, Mask: dictionary.Mask(w), Source: db.SourceHarvest})
		if err != nil {
			return 0, fmt.Errorf("add harvested word %q: %w", w, err)
		}
		if ok {
			added++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}
