package lexicon

import (
	"database/sql"
	"encoding/json"
	"io"

	"github.com/japaniel/alveare/pkg/db"
	"github.com/japaniel/alveare/pkg/dictionary"
)

// Load returns the lexicon words ordered by clean form. This is the order
// the generator sees, so it must stay stable across exports.
func Load(conn *sql.DB) ([]string, error) {
	return db.ListWords(conn)
}

// LoadIndex loads the lexicon into an in-memory index.
func LoadIndex(conn *sql.DB) (*dictionary.Index, error) {
	words, err := Load(conn)
	if err != nil {
		return nil, err
	}
	return dictionary.NewIndex(words), nil
}

// Export writes the lexicon to w as a JSON array of words and returns how
// many were written.
func Export(conn *sql.DB, w io.Writer) (int, error) {
	words, err := Load(conn)
	if err != nil {
		return 0, err
	}
	if words == nil {
		words = []string{}
	}
	return len(words), json.NewEncoder(w).Encode(words)
}
