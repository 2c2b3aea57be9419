package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Perché", "perche"},
		{"  Città ", "citta"},
		{"più", "piu"},
		{"PRANZO", "pranzo"},
		{"naïve", "naive"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, Normalize(tt.in), tt.in)
	}
}

func TestIsAlpha(t *testing.T) {
	assert.True(t, IsAlpha("azzurro"))
	assert.False(t, IsAlpha(""))
	assert.False(t, IsAlpha("l'acqua"))
	assert.False(t, IsAlpha("42"))
}

func TestMask(t *testing.T) {
	assert.Equal(t, uint32(1|1<<18), Mask("sas"))
	assert.Equal(t, Mask("abc"), Mask("cabbac"))
	assert.Zero(t, Mask("123"))
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWordListArray(t *testing.T) {
	path := writeTemp(t, "words.json", `["Pranzo", "azzurro", "", "l'acqua", "Città"]`)
	words, err := LoadWordList(path)
	require.NoError(t, err)
	require.Equal(t, []string{"pranzo", "azzurro", "citta"}, words)
}

func TestLoadWordListObject(t *testing.T) {
	path := writeTemp(t, "words.json", `{"words": ["sasso", "massa"]}`)
	words, err := LoadWordList(path)
	require.NoError(t, err)
	require.Equal(t, []string{"sasso", "massa"}, words)
}

func TestLoadWordListInvalid(t *testing.T) {
	path := writeTemp(t, "words.json", `{"nope": 1}`)
	_, err := LoadWordList(path)
	require.Error(t, err)

	_, err = LoadWordList(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestReadWordListFromReader(t *testing.T) {
	words, err := ReadWordList(strings.NewReader(`["uno","due"]`))
	require.NoError(t, err)
	require.Equal(t, []string{"uno", "due"}, words)
}
