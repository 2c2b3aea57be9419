package dictionary

import (
	"strings"
	"sync"
)

// Index is an in-memory lexicon. Besides the ordered word list it keeps, per
// letter, the words using that letter, which is what a board's center letter
// narrows a search to.
type Index struct {
	mu       sync.RWMutex
	words    []string
	masks    map[string]uint32
	byLetter map[rune][]string
	// wide holds the words with letters outside a-z, which Mask cannot see.
	wide map[string]bool
}

// NewIndex indexes words. Repeated words are kept once, in first-seen order.
func NewIndex(words []string) *Index {
	idx := &Index{
		masks:    make(map[string]uint32, len(words)),
		byLetter: make(map[rune][]string),
		wide:     make(map[string]bool),
	}
	for _, w := range words {
		idx.add(w)
	}
	return idx
}

func (idx *Index) add(w string) {
	if _, ok := idx.masks[w]; ok {
		return
	}
	idx.masks[w] = Mask(w)
	idx.words = append(idx.words, w)
	used := make(map[rune]bool)
	for _, r := range w {
		if used[r] {
			continue
		}
		used[r] = true
		idx.byLetter[r] = append(idx.byLetter[r], w)
		if r < 'a' || r > 'z' {
			idx.wide[w] = true
		}
	}
}

// Add inserts words that are not yet indexed.
func (idx *Index) Add(words ...string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, w := range words {
		idx.add(w)
	}
}

// Contains reports whether w is indexed.
func (idx *Index) Contains(w string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.masks[w]
	return ok
}

// Len returns the number of distinct words.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.words)
}

// Words returns a copy of the words in insertion order.
func (idx *Index) Words() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]string, len(idx.words))
	copy(out, idx.words)
	return out
}

// WithLetter returns the words containing letter, in insertion order.
func (idx *Index) WithLetter(letter rune) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	src := idx.byLetter[letter]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Within returns the words containing center whose letters all lie in
// letters. It is a mask prefilter; length rules are left to the caller.
func (idx *Index) Within(center rune, letters string) []string {
	board := Mask(letters)
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var out []string
	for _, w := range idx.byLetter[center] {
		if idx.masks[w]&^board != 0 {
			continue
		}
		if idx.wide[w] && !spelledWith(w, center, letters) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func spelledWith(w string, center rune, letters string) bool {
	for _, r := range w {
		if r != center && !strings.ContainsRune(letters, r) {
			return false
		}
	}
	return true
}
