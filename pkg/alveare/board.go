package alveare

import "unicode/utf8"

// Board is a generated puzzle. It is never modified after Generate returns.
type Board struct {
	// Seed is the seed that produced the letters. It differs from the
	// requested seed when a pangram search moved to a derived seed.
	Seed        int64          `json:"seed"`
	Center      string         `json:"center"`
	Outer       []string       `json:"outer"`
	ValidWords  []string       `json:"valid_words"`
	Scores      map[string]int `json:"scores"`
	TotalPoints int            `json:"total_points"`
	Threshold   int            `json:"threshold"`
	Pangrams    []string       `json:"pangrams"`
	// PangramRelaxed is set when a pangram was required but none could be
	// found within budget, and the board was generated without one.
	PangramRelaxed bool `json:"pangram_relaxed,omitempty"`
}

// Letters rebuilds the letter set of the board.
func (b *Board) Letters() Letters {
	center, _ := utf8.DecodeRuneInString(b.Center)
	outer := make([]rune, 0, len(b.Outer))
	for _, o := range b.Outer {
		r, _ := utf8.DecodeRuneInString(o)
		outer = append(outer, r)
	}
	return Letters{Center: center, Outer: outer}
}

// Has reports whether word is one of the board's valid words.
func (b *Board) Has(word string) bool {
	_, ok := b.Scores[word]
	return ok
}

func newBoard(seed int64, letters Letters, words []string, cfg *Config) *Board {
	scores, total := ScoreWords(words, cfg.PangramBonus)
	outer := make([]string, len(letters.Outer))
	for i, r := range letters.Outer {
		outer[i] = string(r)
	}
	pangrams := []string{}
	for _, w := range words {
		if IsPangram(w) {
			pangrams = append(pangrams, w)
		}
	}
	return &Board{
		Seed:        seed,
		Center:      string(letters.Center),
		Outer:       outer,
		ValidWords:  words,
		Scores:      scores,
		TotalPoints: total,
		Threshold:   Threshold(total, cfg.ThresholdFraction),
		Pangrams:    pangrams,
	}
}

// Verdict is the outcome of checking a submitted word against a board.
type Verdict struct {
	Word    string
	Reason  Reason
	Points  int
	Pangram bool
}

// OK reports whether the word scores.
func (v Verdict) OK() bool { return v.Reason == Accepted }
