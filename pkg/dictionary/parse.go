package dictionary

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// ParseDic reads a hunspell .dic file. The leading entry count, blank lines
// and comments are skipped; affix flags after '/' are cut off.
func ParseDic(r io.Reader, minLen int) ([]string, error) {
	return scanWords(r, minLen, func(line string) string {
		tok, _, _ := strings.Cut(line, "/")
		return tok
	})
}

// ParseList reads one word per line, as used for whitelists and blacklists.
func ParseList(r io.Reader, minLen int) ([]string, error) {
	return scanWords(r, minLen, func(line string) string { return line })
}

// scanWords returns the distinct normalized words of r in first-seen order.
func scanWords(r io.Reader, minLen int, field func(string) string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := Normalize(field(line))
		// Skips the numeric count line at the top of .dic files too.
		if !IsAlpha(w) || utf8.RuneCountInString(w) < minLen {
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
