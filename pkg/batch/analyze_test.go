package batch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/japaniel/alveare/pkg/alveare"
)

func board(words, pangrams int, relaxed bool) *alveare.Board {
	b := &alveare.Board{PangramRelaxed: relaxed}
	for i := 0; i < words; i++ {
		b.ValidWords = append(b.ValidWords, "w")
	}
	for i := 0; i < pangrams; i++ {
		b.Pangrams = append(b.Pangrams, "p")
	}
	return b
}

func TestAnalyze(t *testing.T) {
	results := []Result{
		{Seed: 1, Board: board(30, 0, true)},
		{Seed: 2, Board: board(20, 2, false)},
		{Seed: 3, Err: alveare.ErrNoPlayableBoard},
		{Seed: 4, Board: board(70, 1, false)},
	}
	s := Analyze(results)
	require.Equal(t, 4, s.Total)
	require.Equal(t, 3, s.Successful)
	require.Equal(t, 1, s.Failed)
	require.Equal(t, 1, s.Relaxed)
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, s.PangramCounts)
	require.Equal(t, 20, s.MinWords)
	require.Equal(t, 70, s.MaxWords)
	require.InDelta(t, 40.0, s.AvgWords(), 1e-9)
	require.InDelta(t, 1.0, s.AvgPangrams(), 1e-9)

	var buf bytes.Buffer
	require.NoError(t, s.Report(&buf))
	out := buf.String()
	require.Contains(t, out, "Total games attempted: 4")
	require.Contains(t, out, "Successful generations: 3 (75.0%)")
	require.Contains(t, out, "Valid words per board: min 20, max 70, avg 40.0")
	require.Contains(t, out, "Games with 0 pangrams: 1 (33.3%)")
	require.Contains(t, out, "Games with 1+ pangrams: 2 (66.7%)")
}

func TestAnalyzeEmpty(t *testing.T) {
	s := Analyze(nil)
	require.Zero(t, s.Total)
	require.Zero(t, s.AvgPangrams())
	require.Zero(t, s.AvgWords())
	var buf bytes.Buffer
	require.NoError(t, s.Report(&buf))
	require.NotContains(t, buf.String(), "Valid words per board")
}

func TestSeeds(t *testing.T) {
	require.Equal(t, []int64{5, 6, 7}, Seeds(5, 3))
	require.Empty(t, Seeds(5, 0))
}
