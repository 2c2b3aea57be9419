package alveare

import (
	"math"
	"unicode/utf8"
)

// DefaultPangramBonus is added to the score of a word using all seven letters.
const DefaultPangramBonus = 7

// DistinctLetters counts the different letters in word.
func DistinctLetters(word string) int {
	seen := make(map[rune]struct{}, LetterCount)
	for _, r := range word {
		seen[r] = struct{}{}
	}
	return len(seen)
}

// IsPangram reports whether word uses all seven board letters. On a valid
// word this is the same as having exactly seven distinct letters.
func IsPangram(word string) bool {
	return DistinctLetters(word) == LetterCount
}

// ScoreWord returns the points for a valid word: one point for a four
// letter word, its length otherwise, plus bonus when it is a pangram.
func ScoreWord(word string, bonus int) int {
	n := utf8.RuneCountInString(word)
	points := n
	if n == 4 {
		points = 1
	}
	if IsPangram(word) {
		points += bonus
	}
	return points
}

// ScoreWords scores every word and returns the per-word map and the total.
func ScoreWords(words []string, bonus int) (map[string]int, int) {
	scores := make(map[string]int, len(words))
	total := 0
	for _, w := range words {
		pts := ScoreWord(w, bonus)
		scores[w] = pts
		total += pts
	}
	return scores, total
}

// Threshold is the score needed to complete a board: floor(total * fraction).
func Threshold(total int, fraction float64) int {
	return int(math.Floor(float64(total) * fraction))
}
