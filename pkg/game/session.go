// Package game plays a generated board: it checks guesses, keeps the score
// and saves progress.
package game

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/japaniel/alveare/pkg/alveare"
	"github.com/japaniel/alveare/pkg/db"
	"github.com/japaniel/alveare/pkg/dictionary"
)

// Result is the outcome of one guess.
type Result struct {
	alveare.Verdict
	// Message is the localized feedback: the rejection reason, the pangram
	// notice or a plain acknowledgement.
	Message string
}

// Progress summarizes a session.
type Progress struct {
	Found       int
	TotalWords  int
	Score       int
	Threshold   int
	TotalPoints int
	Percent     float64
	Rank        string
}

// Session is one player's game on a board. It is not safe for concurrent use.
type Session struct {
	ID    string
	Board *alveare.Board

	gen   *alveare.Generator
	msgs  *Localizer
	found mapset.Set[string]
	order []string
	score int
	outer []string
}

// NewSession starts a game on b with a fresh id. Guesses are checked with
// the rules of gen, which should be the generator that built b.
func NewSession(gen *alveare.Generator, b *alveare.Board, msgs *Localizer) *Session {
	if msgs == nil {
		msgs = NewLocalizer("it")
	}
	outer := make([]string, len(b.Outer))
	copy(outer, b.Outer)
	return &Session{
		ID:    uuid.NewString(),
		Board: b,
		gen:   gen,
		msgs:  msgs,
		found: mapset.New[string](),
		outer: outer,
	}
}

// Guess checks word and, when it is accepted, records it and adds its points.
func (s *Session) Guess(word string) Result {
	word = dictionary.Normalize(word)
	res := Result{Verdict: alveare.Verdict{Word: word}}

	res.Reason = alveare.CheckRules(word, s.Board.Letters(), s.gen.Config().MinWordLength)
	if res.Reason == alveare.Accepted && s.found.Has(word) {
		res.Reason = alveare.AlreadyFound
	}
	if res.Reason == alveare.Accepted {
		res.Verdict = s.gen.Check(s.Board, word)
	}
	if !res.OK() {
		res.Message = s.msgs.Reason(res.Reason)
		return res
	}

	s.found.Put(word)
	s.order = append(s.order, word)
	s.score += res.Points
	switch {
	case res.Pangram:
		res.Message = s.msgs.Pangram()
	default:
		res.Message = s.msgs.Nice()
	}
	return res
}

// Found returns the accepted words in the order they were found.
func (s *Session) Found() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Missing returns the valid words not found yet, in board order.
func (s *Session) Missing() []string {
	var out []string
	for _, w := range s.Board.ValidWords {
		if !s.found.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// Won reports whether the score reached the board threshold.
func (s *Session) Won() bool { return s.score >= s.Board.Threshold }

// Progress returns the current standing.
func (s *Session) Progress() Progress {
	p := Progress{
		Found:       s.found.Size(),
		TotalWords:  len(s.Board.ValidWords),
		Score:       s.score,
		Threshold:   s.Board.Threshold,
		TotalPoints: s.Board.TotalPoints,
	}
	if p.TotalPoints > 0 {
		p.Percent = math.Min(100, float64(p.Score)/float64(p.TotalPoints)*100)
	}
	p.Rank = s.msgs.Rank(p.Percent)
	return p
}

// Outer returns the outer letters in their current display order.
func (s *Session) Outer() []string {
	out := make([]string, len(s.outer))
	copy(out, s.outer)
	return out
}

// Shuffle redraws the outer letters in a new order and returns it.
func (s *Session) Shuffle(r *alveare.Rand) []string {
	s.outer = alveare.ShuffleOuter(r, s.outer)
	return s.Outer()
}

// Save stores the session progress.
func (s *Session) Save(conn db.DBExecutor) error {
	return db.SaveSession(conn, db.SessionRecord{
		ID:    s.ID,
		Seed:  s.Board.Seed,
		Found: s.Found(),
		Score: s.score,
	})
}

// ErrWrongBoard is returned when a saved session belongs to another board.
var ErrWrongBoard = errors.New("saved session belongs to another board")

// Resume restores the saved session id on b. Saved words are guessed again,
// so the score always matches the board.
func Resume(conn db.DBExecutor, gen *alveare.Generator, b *alveare.Board, msgs *Localizer, id string) (*Session, error) {
	rec, err := db.GetSession(conn, id)
	if err != nil {
		return nil, err
	}
	return restore(rec, gen, b, msgs)
}

// ResumeLatest restores the most recent session saved for b, or starts a
// new one when there is none.
func ResumeLatest(conn db.DBExecutor, gen *alveare.Generator, b *alveare.Board, msgs *Localizer) (*Session, error) {
	rec, err := db.LatestSession(conn, b.Seed)
	if errors.Is(err, sql.ErrNoRows) {
		return NewSession(gen, b, msgs), nil
	}
	if err != nil {
		return nil, err
	}
	return restore(rec, gen, b, msgs)
}

func restore(rec *db.SessionRecord, gen *alveare.Generator, b *alveare.Board, msgs *Localizer) (*Session, error) {
	if rec.Seed != b.Seed {
		return nil, fmt.Errorf("session %s has seed %d, board has %d: %w", rec.ID, rec.Seed, b.Seed, ErrWrongBoard)
	}
	s := NewSession(gen, b, msgs)
	s.ID = rec.ID
	for _, w := range rec.Found {
		s.Guess(w)
	}
	return s, nil
}

// Messages returns the localizer the session reports with.
func (s *Session) Messages() *Localizer { return s.msgs }
