package dictionary

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s and strips diacritics, so "Perché" becomes "perche".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// A Chain keeps state between calls, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// IsAlpha reports whether s is non-empty and made of letters only.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Mask sets bit n for each letter 'a'+n used in word. Other runes are ignored.
func Mask(word string) uint32 {
	var m uint32
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			m |= 1 << uint(r-'a')
		}
	}
	return m
}

// LoadWordList reads a JSON word list: either an array of strings or an
// object wrapping it as {"words": [...]}. Entries are normalized; empty and
// non-alphabetic entries are dropped. The file order is kept.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWordList(f)
}

// ReadWordList is LoadWordList over an already open stream.
func ReadWordList(r io.ReadSeeker) ([]string, error) {
	var wrapped struct {
		Words []string `json:"words"`
	}
	// Try parsing as full object wrapper first { "words": [...] }
	dec := json.NewDecoder(r)
	if err := dec.Decode(&wrapped); err == nil && len(wrapped.Words) > 0 {
		return cleanWords(wrapped.Words), nil
	}

	// Reset and try as array [...]
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var words []string
	dec = json.NewDecoder(r)
	if err := dec.Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to parse word list as object or array: %w", err)
	}
	return cleanWords(words), nil
}

func cleanWords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = Normalize(w)
		if !IsAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
