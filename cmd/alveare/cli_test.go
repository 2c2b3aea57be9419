package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/alveare/pkg/alveare"
)

// goldenWords is a small Italian word list; with seed 100000 it yields a
// board of 23 words on [S] h o a b m f.
var goldenWords = strings.Fields(`ossa sasso basso bassa massa masso mossa mosso fossa fosso
	sbafo smash samba sabba abbassa abbasso ammassa ammasso asma soma boss sbaffo osso
	fame bomba sho pranzo azzurro casa mamma`)

func writeLexicon(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(goldenWords)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateText(t *testing.T) {
	out, err := run(t, "", "generate", "--seed", "100000", "--no-pangram", "--lexicon", writeLexicon(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 100000")
	assert.Contains(t, out, "[S]  h o a b m f")
	assert.Contains(t, out, "Words: 23   Points: 104   Goal: 57")
}

func TestGenerateJSON(t *testing.T) {
	out, err := run(t, "", "generate", "--seed", "100000", "--no-pangram", "--json", "--fraction", "0.7", "--lexicon", writeLexicon(t))
	require.NoError(t, err)

	var b alveare.Board
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, int64(100000), b.Seed)
	assert.Equal(t, "s", b.Center)
	assert.Len(t, b.ValidWords, 23)
	assert.Equal(t, 72, b.Threshold)
	assert.False(t, b.PangramRelaxed)
}

func TestGenerateRelaxesPangram(t *testing.T) {
	out, err := run(t, "", "generate", "--seed", "100000", "--lexicon", writeLexicon(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 100000")
	assert.Contains(t, out, "pangram requirement relaxed")
}

func TestGenerateFlagErrors(t *testing.T) {
	lex := writeLexicon(t)
	_, err := run(t, "", "generate", "--seed", "1", "--daily", "--lexicon", lex)
	require.ErrorContains(t, err, "mutually exclusive")

	_, err = run(t, "", "generate", "--seed", "1", "--fraction", "1.5", "--lexicon", lex)
	require.ErrorIs(t, err, alveare.ErrInvalidConfig)

	_, err = run(t, "", "generate", "--seed", "1", "--lexicon", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestGenerateSavesBoard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "alveare.db")
	_, err := run(t, "", "generate", "--seed", "100000", "--no-pangram", "--save", "--db", dbPath, "--lexicon", writeLexicon(t))
	require.NoError(t, err)
	_, err = os.Stat(dbPath)
	require.NoError(t, err)
}

func TestPlaySession(t *testing.T) {
	input := "help\nossa\nossa\nhobo\nscore\nlist\nquit\n"
	out, err := run(t, input, "play", "--seed", "100000", "--no-pangram", "--lexicon", writeLexicon(t))
	require.NoError(t, err)
	assert.Contains(t, out, playHelp)
	assert.Contains(t, out, "+1 Bene!")
	assert.Contains(t, out, "Già trovata")
	assert.Contains(t, out, "Manca la lettera centrale")
	assert.Contains(t, out, "Found 1/23   Score 1 / 57")
	assert.Contains(t, out, "56 punti all'obiettivo")
	assert.Contains(t, out, "Found:\nossa\n")
	assert.True(t, strings.HasSuffix(out, "Bye\n"))
}

func TestPlayGiveUpInEnglish(t *testing.T) {
	out, err := run(t, "soba\ngiveup\n", "play", "--seed", "100000", "--no-pangram", "--lang", "en", "--lexicon", writeLexicon(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Word not recognized")
	assert.Contains(t, out, "All words:\nossa 1\nsasso 5\n")
}

func TestPlayResumesSavedProgress(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "alveare.db")
	lex := writeLexicon(t)
	_, err := run(t, "sasso\nquit\n", "play", "--seed", "100000", "--no-pangram", "--save", "--db", dbPath, "--lexicon", lex)
	require.NoError(t, err)

	out, err := run(t, "score\n", "play", "--seed", "100000", "--no-pangram", "--save", "--db", dbPath, "--lexicon", lex)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1/23   Score 5 / 57")
	assert.Contains(t, out, "Goodbye")
}

func TestAnalyze(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "alveare.db")
	out, err := run(t, "", "analyze", "--iterations", "5", "--workers", "2", "--no-pangram",
		"--store", "--db", dbPath, "--lexicon", writeLexicon(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Total games attempted: 5")
	assert.Contains(t, out, "Pangram distribution:")

	_, err = run(t, "", "analyze", "--iterations", "0", "--lexicon", writeLexicon(t))
	require.Error(t, err)
}

func TestLexiconBuildExportStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lexicon.db")
	dic := filepath.Join(dir, "it.dic")
	require.NoError(t, os.WriteFile(dic, []byte("3\ncane/S\nmela\nsasso\n"), 0o644))
	bl := filepath.Join(dir, "bl.txt")
	require.NoError(t, os.WriteFile(bl, []byte("mela\n"), 0o644))

	out, err := run(t, "", "lexicon", "build", "--db", dbPath, "--dic", dic, "--blacklist", bl)
	require.NoError(t, err)
	assert.Contains(t, out, "excluded_blacklist: 1")
	assert.Contains(t, out, "rows_written: 2")

	out, err = run(t, "", "lexicon", "export", "--db", dbPath)
	require.NoError(t, err)
	var words []string
	require.NoError(t, json.Unmarshal([]byte(out), &words))
	assert.Equal(t, []string{"cane", "sasso"}, words)

	exported := filepath.Join(dir, "words.json")
	out, err = run(t, "", "lexicon", "export", "--db", dbPath, "-o", exported)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 words")

	out, err = run(t, "", "lexicon", "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "dictionary: 2\ntotal: 2\n")

	out, err = run(t, "", "lexicon", "stats", "--db", dbPath, "--center", "s", "--letters", "ao")
	require.NoError(t, err)
	assert.Equal(t, "sasso\n1 words\n", out)

	_, err = run(t, "", "lexicon", "build", "--db", dbPath)
	require.Error(t, err)
}
