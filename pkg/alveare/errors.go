package alveare

import (
	"errors"
	"fmt"
)

var (
	// ErrAlphabetInsufficient means the vowel or consonant alphabet is too
	// small for the 2-3 vowel split. It is a configuration error.
	ErrAlphabetInsufficient = errors.New("alphabet too small for letter quota")
	// ErrInvalidConfig is returned for any other out-of-range setting.
	ErrInvalidConfig = errors.New("invalid generator config")
	// ErrNoPlayableBoard means every attempt missed the word-count window.
	// Callers should pick another seed or relax the configuration.
	ErrNoPlayableBoard = errors.New("no playable board found")
)

// GenerationError reports an exhausted search for a seed.
type GenerationError struct {
	Seed int64
	// Attempts is the number of letter draws made on each seed searched.
	Attempts int
	// Seeds is the number of seeds searched: 1, or every derived seed of a
	// pangram search.
	Seeds int
}

func (e *GenerationError) Error() string {
	if e.Seeds > 1 {
		return fmt.Sprintf("no playable board for seed %d after %d attempts on each of %d seeds", e.Seed, e.Attempts, e.Seeds)
	}
	return fmt.Sprintf("no playable board for seed %d after %d attempts", e.Seed, e.Attempts)
}

func (e *GenerationError) Unwrap() error { return ErrNoPlayableBoard }
