package alveare

import (
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// DefaultMinWordLength is the shortest word a board accepts.
const DefaultMinWordLength = 4

// Reason explains why a word was accepted or rejected.
type Reason int

const (
	Accepted Reason = iota
	TooShort
	MissingCenter
	InvalidLetter
	NotInList
	AlreadyFound
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case TooShort:
		return "too short"
	case MissingCenter:
		return "missing center letter"
	case InvalidLetter:
		return "invalid letter"
	case NotInList:
		return "not in word list"
	case AlreadyFound:
		return "already found"
	default:
		return "unknown"
	}
}

// letterSet is the membership set for a board's seven letters.
type letterSet = mapset.Set[rune]

func newLetterSet(l Letters) letterSet {
	return mapset.Of(l.All()...)
}

// checkRules applies the board rules to a single word in the order the game
// reports them: length, center, letters. It does not consult any word list.
func checkRules(word string, center rune, allowed letterSet, minLen int) Reason {
	if utf8.RuneCountInString(word) < minLen {
		return TooShort
	}
	if !strings.ContainsRune(word, center) {
		return MissingCenter
	}
	for _, r := range word {
		if !allowed.Has(r) {
			return InvalidLetter
		}
	}
	return Accepted
}

// CheckRules reports whether word can be played on the given letters:
// at least minLen long, contains the center, and uses only board letters.
func CheckRules(word string, letters Letters, minLen int) Reason {
	return checkRules(word, letters.Center, newLetterSet(letters), minLen)
}

// ValidWords filters dict down to the words playable on letters. Dictionary
// order is kept and repeated entries are dropped. dict is never modified.
func ValidWords(letters Letters, dict []string, minLen int) []string {
	allowed := newLetterSet(letters)
	seen := mapset.New[string]()
	var out []string
	for _, w := range dict {
		if seen.Has(w) {
			continue
		}
		if checkRules(w, letters.Center, allowed, minLen) != Accepted {
			continue
		}
		seen.Put(w)
		out = append(out, w)
	}
	return out
}
