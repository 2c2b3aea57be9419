package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func tableColumns(t *testing.T, conn *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := conn.Query("PRAGMA table_info(" + table + ")")
	require.NoError(t, err)
	defer rows.Close()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var colName, ctype string
		var notnull, pk int
		var dfltVal interface{}
		require.NoError(t, rows.Scan(&cid, &colName, &ctype, &notnull, &dfltVal, &pk))
		cols[colName] = true
	}
	require.NoError(t, rows.Err())
	return cols
}

// TestInitDBCreatesSchema verifies InitDB creates every table with the
// columns the store relies on, and that running it twice is harmless.
func TestInitDBCreatesSchema(t *testing.T) {
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	require.NoError(t, InitDB(conn))
	require.NoError(t, InitDB(conn))

	words := tableColumns(t, conn, "words")
	for _, c := range []string{"clean_form", "mask", "source"} {
		require.True(t, words[c], "words.%s missing", c)
	}
	boards := tableColumns(t, conn, "boards")
	for _, c := range []string{"seed", "center", "outer_letters", "words", "scores", "total_points", "threshold", "pangrams", "pangram_relaxed"} {
		require.True(t, boards[c], "boards.%s missing", c)
	}
	sessions := tableColumns(t, conn, "sessions")
	require.True(t, sessions["found"])
	require.True(t, tableColumns(t, conn, "meta")["value"])
}
