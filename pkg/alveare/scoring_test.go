package alveare

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreFourLetterWordIsOnePoint(t *testing.T) {
	require.Equal(t, 1, ScoreWord("soma", DefaultPangramBonus))
}

func TestScoreLongWordIsLength(t *testing.T) {
	require.Equal(t, 5, ScoreWord("sasso", DefaultPangramBonus))
	require.Equal(t, 7, ScoreWord("abbasso", DefaultPangramBonus))
}

func TestScorePangramBonus(t *testing.T) {
	word := "sbaffhomo"
	require.Len(t, word, 9)
	require.True(t, IsPangram(word))
	require.Equal(t, 16, ScoreWord(word, DefaultPangramBonus))
	require.Equal(t, 10, ScoreWord(word, 1))
}

func TestScoreWordsTotal(t *testing.T) {
	scores, total := ScoreWords([]string{"soma", "sasso", "sbaffhomo"}, DefaultPangramBonus)
	require.Equal(t, map[string]int{"soma": 1, "sasso": 5, "sbaffhomo": 16}, scores)
	require.Equal(t, 22, total)
}

func TestThresholdFloors(t *testing.T) {
	require.Equal(t, 57, Threshold(104, 0.55))
	require.Equal(t, 72, Threshold(104, 0.70))
	require.Equal(t, 0, Threshold(0, 0.55))
	require.Equal(t, 104, Threshold(104, 1))
}

func TestDistinctLetters(t *testing.T) {
	require.Equal(t, 3, DistinctLetters("massa"))
	require.Equal(t, 0, DistinctLetters(""))
}
