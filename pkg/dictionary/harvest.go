package dictionary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
)

// maxPageSize bounds the HTML read from an untrusted page.
const maxPageSize = 10 * 1024 * 1024

// Harvest is the result of extracting words from an article page.
type Harvest struct {
	Title string
	// Words are the distinct normalized words of the article, in order of
	// first appearance, with their occurrence counts in Counts.
	Words  []string
	Counts map[string]int
}

// HarvestURL fetches an article, extracts its readable text and returns the
// words it uses. Words shorter than minLen are skipped.
func HarvestURL(ctx context.Context, client *http.Client, pageURL string, minLen int) (*Harvest, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", pageURL, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; alveare-cli)")
	req.Header.Set("Accept-Language", "it-IT,it;q=0.9,en;q=0.5")

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxPageSize {
		return nil, fmt.Errorf("page exceeds %d bytes", maxPageSize)
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article: %w", err)
	}

	h := &Harvest{Title: article.Title, Counts: make(map[string]int)}
	for _, w := range Tokenize(article.TextContent) {
		if utf8.RuneCountInString(w) < minLen {
			continue
		}
		if h.Counts[w] == 0 {
			h.Words = append(h.Words, w)
		}
		h.Counts[w]++
	}
	return h, nil
}

// Tokenize splits text on anything that is not a letter and normalizes each
// token. Elided articles ("l'acqua") split into their parts.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := Normalize(f); IsAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// Unknown returns the harvested words missing from idx.
func (h *Harvest) Unknown(idx *Index) []string {
	var out []string
	for _, w := range h.Words {
		if !idx.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}
