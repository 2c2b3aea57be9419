package db

import "time"

// Word sources, in order of precedence when building the lexicon.
const (
	SourceWhitelist  = "whitelist"
	SourceDictionary = "dictionary"
	SourceHarvest    = "harvest"
)

// LexiconWord is one playable word of the lexicon.
type LexiconWord struct {
	CleanForm string
	Mask      uint32
	Source    string
}

// BoardRecord is a generated board as archived in the boards table.
type BoardRecord struct {
	Seed           int64
	Center         string
	Outer          []string
	Words          []string
	Scores         map[string]int
	TotalPoints    int
	Threshold      int
	Pangrams       int
	PangramRelaxed bool
	CreatedAt      time.Time
}

// SessionRecord is the saved progress of a player on one board.
type SessionRecord struct {
	ID        string
	Seed      int64
	Found     []string
	Score     int
	UpdatedAt time.Time
}
