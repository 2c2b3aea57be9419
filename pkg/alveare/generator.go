package alveare

import (
	"errors"
	"log"
)

// Generator builds boards from a seed and a dictionary. It holds no state
// between calls, so one Generator can be shared by concurrent callers.
type Generator struct {
	cfg        *Config
	vowels     []rune
	consonants []rune

	// Logger receives notices such as a relaxed pangram requirement. nil means no logging.
	Logger *log.Logger
}

// New validates cfg and returns a generator for it. A nil cfg is rejected
// because the threshold fraction has no default.
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	vowels, _ := alphabet(cfg.Vowels)
	consonants, _ := alphabet(cfg.Consonants)
	c := *cfg
	return &Generator{
		cfg:        &c,
		vowels:     vowels,
		consonants: consonants,
	}, nil
}

// Config returns a copy of the generator settings.
func (g *Generator) Config() Config { return *g.cfg }

// Generate returns a playable board for seed. The result depends only on
// seed, dict, requirePangram and the configuration.
//
// With requirePangram set, boards without a pangram are rejected and the
// search moves on to derived seeds seed+1000, seed+2000, ... When none of
// them yields a pangram, the board for seed is returned with PangramRelaxed
// set. A *GenerationError wrapping ErrNoPlayableBoard is returned when no
// playable board exists at all.
func (g *Generator) Generate(seed int64, dict []string, requirePangram bool) (*Board, error) {
	if !requirePangram {
		return g.search(seed, dict)
	}

	var relaxed *Board
	var relaxedErr error
	for k := 0; k < g.cfg.MaxPangramAttempts; k++ {
		derived := seed + int64(k)*PangramSeedStep
		b, err := g.search(derived, dict)
		if k == 0 {
			relaxed, relaxedErr = b, err
		}
		if err != nil {
			continue
		}
		if len(b.Pangrams) > 0 {
			return b, nil
		}
	}

	// The first outer attempt ran the plain search on seed, so its result is
	// exactly what a relaxed run would give.
	if relaxed == nil && relaxedErr == nil {
		relaxed, relaxedErr = g.search(seed, dict)
	}
	if relaxedErr != nil {
		var ge *GenerationError
		if errors.As(relaxedErr, &ge) {
			return nil, &GenerationError{Seed: seed, Attempts: ge.Attempts, Seeds: g.cfg.MaxPangramAttempts}
		}
		return nil, relaxedErr
	}
	relaxed.PangramRelaxed = true
	if g.Logger != nil {
		g.Logger.Printf("seed %d: no pangram board after %d seeds, returning board without pangram", seed, g.cfg.MaxPangramAttempts)
	}
	return relaxed, nil
}

// search runs up to MaxAttempts letter draws on one PRNG stream and returns
// the first board inside the word-count window.
func (g *Generator) search(seed int64, dict []string) (*Board, error) {
	r := NewRand(seed)
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		letters := SampleLetters(r, g.vowels, g.consonants)
		words := ValidWords(letters, dict, g.cfg.MinWordLength)
		if len(words) < g.cfg.MinWords || len(words) > g.cfg.MaxWords {
			continue
		}
		return newBoard(seed, letters, words, g.cfg), nil
	}
	return nil, &GenerationError{Seed: seed, Attempts: g.cfg.MaxAttempts, Seeds: 1}
}

// Check validates a submitted word against b with the same rules and scoring
// used to generate it.
func (g *Generator) Check(b *Board, word string) Verdict {
	v := Verdict{Word: word}
	v.Reason = CheckRules(word, b.Letters(), g.cfg.MinWordLength)
	if v.Reason != Accepted {
		return v
	}
	if !b.Has(word) {
		v.Reason = NotInList
		return v
	}
	v.Points = ScoreWord(word, g.cfg.PangramBonus)
	v.Pangram = IsPangram(word)
	return v
}

// Generate is a convenience wrapper building a one-off Generator.
func Generate(seed int64, dict []string, requirePangram bool, cfg *Config) (*Board, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(seed, dict, requirePangram)
}
