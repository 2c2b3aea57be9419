package alveare

import "strings"

// LetterCount is the number of letters on a board: one center and six outer.
const LetterCount = 7

const (
	// DefaultVowels is the vowel partition of the Italian alphabet.
	DefaultVowels = "aeiou"
	// DefaultConsonants are the consonants common enough in Italian to give
	// playable boards. j, k, q, w, x and y are left out.
	DefaultConsonants = "bcdfghlmnprstvz"

	minVowels = 2
	maxVowels = 3
)

// Letters is a sampled board: the mandatory center letter and the six outer
// letters in display order.
type Letters struct {
	Center rune
	Outer  []rune
}

// All returns the seven letters, center first.
func (l Letters) All() []rune {
	all := make([]rune, 0, 1+len(l.Outer))
	all = append(all, l.Center)
	return append(all, l.Outer...)
}

// String renders the board as "[C] o u t e r".
func (l Letters) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.ToUpper(string(l.Center)))
	sb.WriteString("]")
	for _, r := range l.Outer {
		sb.WriteString(" ")
		sb.WriteRune(r)
	}
	return sb.String()
}

// SampleLetters draws a letter set: two or three vowels, consonants for the
// rest, shuffled together. The first letter after the shuffle is the center.
// The alphabets must hold at least maxVowels vowels and
// LetterCount-minVowels consonants; Config.Validate checks this.
func SampleLetters(r *Rand, vowels, consonants []rune) Letters {
	numVowels := r.IntRange(minVowels, maxVowels+1)

	letters := make([]rune, 0, LetterCount)
	letters = append(letters, Sample(r, vowels, numVowels)...)
	letters = append(letters, Sample(r, consonants, LetterCount-numVowels)...)
	Shuffle(r, letters)

	return Letters{
		Center: letters[0],
		Outer:  letters[1:],
	}
}

// ShuffleOuter returns a reshuffled copy of the outer letters. It only changes
// how the hive is drawn; scoring never depends on outer order.
func ShuffleOuter(r *Rand, outer []string) []string {
	out := make([]string, len(outer))
	copy(out, outer)
	Shuffle(r, out)
	return out
}
