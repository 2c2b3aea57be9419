package game

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"

	"github.com/japaniel/alveare/pkg/alveare"
)

//go:embed locale/it.po
var italianPo []byte

// Localizer translates player-facing messages. Message ids are the English
// texts, so an empty catalogue yields English.
type Localizer struct {
	po *gotext.Po
}

// NewLocalizer returns the messages for lang. "it" uses the embedded Italian
// catalogue; any other language falls back to English.
func NewLocalizer(lang string) *Localizer {
	po := gotext.NewPo()
	if lang == "it" {
		po.Parse(italianPo)
	}
	return &Localizer{po: po}
}

// Get returns the translation of the format string id, formatted with vars
// the way fmt.Sprintf does.
func (l *Localizer) Get(id string, vars ...any) string {
	return l.po.Get(id, vars...)
}

// Reason returns the feedback shown for a rejected word, or "" when r is
// Accepted.
func (l *Localizer) Reason(r alveare.Reason) string {
	switch r {
	case alveare.TooShort:
		return l.Get("Too short")
	case alveare.MissingCenter:
		return l.Get("Missing center letter")
	case alveare.InvalidLetter:
		return l.Get("Invalid letter")
	case alveare.AlreadyFound:
		return l.Get("Already found")
	case alveare.NotInList:
		return l.Get("Word not recognized")
	}
	return ""
}

// Rank names the progress of a player holding pct percent of the points.
func (l *Localizer) Rank(pct float64) string {
	switch {
	case pct > 70:
		return l.Get("Queen Bee")
	case pct > 50:
		return l.Get("Genius")
	case pct > 40:
		return l.Get("Excellent")
	case pct > 25:
		return l.Get("Expert")
	case pct > 15:
		return l.Get("Solid")
	case pct > 8:
		return l.Get("Good")
	case pct > 5:
		return l.Get("Moving Up")
	case pct > 2:
		return l.Get("Good Start")
	}
	return l.Get("Beginner")
}

// Pangram is the feedback for an accepted pangram.
func (l *Localizer) Pangram() string { return l.Get("Pangram!") }

// Nice is the feedback for any other accepted word.
func (l *Localizer) Nice() string { return l.Get("Nice!") }

// GoalReached announces that the win threshold was crossed.
func (l *Localizer) GoalReached() string { return l.Get("Goal reached!") }

// PointsToGoal tells how many points are left before the win threshold.
func (l *Localizer) PointsToGoal(n int) string {
	return l.Get("%d points to the goal", n)
}
