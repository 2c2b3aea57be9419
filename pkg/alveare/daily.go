package alveare

import "time"

// DailySeedBase is the seed of the first daily puzzle.
const DailySeedBase = 100000

var dailyEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DailySeed returns the seed of the daily puzzle for the UTC day of t.
func DailySeed(t time.Time) int64 {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return DailySeedBase + int64(day.Sub(dailyEpoch)/(24*time.Hour))
}
