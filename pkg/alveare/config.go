package alveare

import (
	"fmt"
	"unicode"
)

const (
	DefaultMinWords           = 20
	DefaultMaxWords           = 80
	DefaultMaxAttempts        = 50
	DefaultMaxPangramAttempts = 100

	// PangramSeedStep separates the derived seeds tried when a board must
	// contain a pangram: seed, seed+1000, seed+2000, ...
	PangramSeedStep = 1000
)

// Config tunes board generation.
type Config struct {
	MinWords           int     // Fewest valid words on a playable board
	MaxWords           int     // Most valid words on a playable board
	MaxAttempts        int     // Letter draws per seed
	MaxPangramAttempts int     // Derived seeds tried when a pangram is required
	PangramBonus       int     // Points added for a pangram
	MinWordLength      int     // Shortest accepted word
	ThresholdFraction  float64 // Share of the total points needed to complete a board
	Vowels             string
	Consonants         string
}

// DefaultConfig returns the standard generator settings. Deployments disagree
// on how much of a board must be found to complete it, so the threshold
// fraction is always supplied by the caller.
func DefaultConfig(thresholdFraction float64) *Config {
	return &Config{
		MinWords:           DefaultMinWords,
		MaxWords:           DefaultMaxWords,
		MaxAttempts:        DefaultMaxAttempts,
		MaxPangramAttempts: DefaultMaxPangramAttempts,
		PangramBonus:       DefaultPangramBonus,
		MinWordLength:      DefaultMinWordLength,
		ThresholdFraction:  thresholdFraction,
		Vowels:             DefaultVowels,
		Consonants:         DefaultConsonants,
	}
}

// Validate checks the settings. Alphabets that cannot fill a 3 vowel or a
// 5 consonant quota fail with ErrAlphabetInsufficient; anything else that is
// out of range fails with ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.ThresholdFraction <= 0 || c.ThresholdFraction > 1 {
		return fmt.Errorf("%w: threshold fraction %v not in (0, 1]", ErrInvalidConfig, c.ThresholdFraction)
	}
	if c.MinWords < 0 || c.MaxWords < c.MinWords {
		return fmt.Errorf("%w: word window [%d, %d]", ErrInvalidConfig, c.MinWords, c.MaxWords)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.MaxPangramAttempts < 0 {
		return fmt.Errorf("%w: max pangram attempts must not be negative, got %d", ErrInvalidConfig, c.MaxPangramAttempts)
	}
	if c.MinWordLength < 1 {
		return fmt.Errorf("%w: min word length must be positive, got %d", ErrInvalidConfig, c.MinWordLength)
	}

	vowels, err := alphabet(c.Vowels)
	if err != nil {
		return err
	}
	consonants, err := alphabet(c.Consonants)
	if err != nil {
		return err
	}
	for _, v := range vowels {
		for _, k := range consonants {
			if v == k {
				return fmt.Errorf("%w: letter %q is both a vowel and a consonant", ErrInvalidConfig, v)
			}
		}
	}
	if len(vowels) < maxVowels {
		return fmt.Errorf("%w: need %d vowels, have %d", ErrAlphabetInsufficient, maxVowels, len(vowels))
	}
	if need := LetterCount - minVowels; len(consonants) < need {
		return fmt.Errorf("%w: need %d consonants, have %d", ErrAlphabetInsufficient, need, len(consonants))
	}
	return nil
}

// alphabet turns a letter string into distinct lowercase runes, keeping order.
func alphabet(s string) ([]rune, error) {
	var out []rune
	seen := make(map[rune]bool)
	for _, r := range s {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return nil, fmt.Errorf("%w: alphabet letter %q is not a lowercase letter", ErrInvalidConfig, r)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out, nil
}
