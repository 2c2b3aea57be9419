package batch

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Stats summarizes a batch of generated boards.
type Stats struct {
	Total      int
	Successful int
	Failed     int
	Relaxed    int
	// PangramCounts maps a pangram count to the number of boards having it.
	PangramCounts map[int]int
	TotalPangrams int
	MinWords      int
	MaxWords      int
	TotalWords    int
}

// Analyze computes the pangram distribution and word-count range of results.
func Analyze(results []Result) Stats {
	s := Stats{PangramCounts: make(map[int]int)}
	for _, r := range results {
		s.Total++
		if r.Board == nil {
			s.Failed++
			continue
		}
		s.Successful++
		if r.Board.PangramRelaxed {
			s.Relaxed++
		}
		n := len(r.Board.Pangrams)
		s.PangramCounts[n]++
		s.TotalPangrams += n

		words := len(r.Board.ValidWords)
		if s.Successful == 1 || words < s.MinWords {
			s.MinWords = words
		}
		if words > s.MaxWords {
			s.MaxWords = words
		}
		s.TotalWords += words
	}
	return s
}

// AvgPangrams is the mean number of pangrams per successful board.
func (s Stats) AvgPangrams() float64 {
	if s.Successful == 0 {
		return 0
	}
	return float64(s.TotalPangrams) / float64(s.Successful)
}

// AvgWords is the mean number of valid words per successful board.
func (s Stats) AvgWords() float64 {
	if s.Successful == 0 {
		return 0
	}
	return float64(s.TotalWords) / float64(s.Successful)
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return float64(n) / float64(of) * 100
}

// Report writes a human readable summary.
func (s Stats) Report(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total games attempted: %d\n", s.Total)
	fmt.Fprintf(&sb, "Successful generations: %d (%.1f%%)\n", s.Successful, percent(s.Successful, s.Total))
	fmt.Fprintf(&sb, "Failed generations: %d\n", s.Failed)
	fmt.Fprintf(&sb, "Boards without required pangram: %d\n", s.Relaxed)
	if s.Successful > 0 {
		fmt.Fprintf(&sb, "Valid words per board: min %d, max %d, avg %.1f\n", s.MinWords, s.MaxWords, s.AvgWords())
	}

	sb.WriteString("\nPangram distribution:\n")
	counts := make([]int, 0, len(s.PangramCounts))
	for c := range s.PangramCounts {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	for _, c := range counts {
		n := s.PangramCounts[c]
		pct := percent(n, s.Successful)
		fmt.Fprintf(&sb, "%d pangrams: %4d (%5.1f%%) %s\n", c, n, pct, strings.Repeat("#", int(pct/2)))
	}
	fmt.Fprintf(&sb, "\nAverage pangrams per game: %.2f\n", s.AvgPangrams())
	zero := s.PangramCounts[0]
	fmt.Fprintf(&sb, "Games with 0 pangrams: %d (%.1f%%)\n", zero, percent(zero, s.Successful))
	fmt.Fprintf(&sb, "Games with 1+ pangrams: %d (%.1f%%)\n", s.Successful-zero, percent(s.Successful-zero, s.Successful))

	_, err := io.WriteString(w, sb.String())
	return err
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}
