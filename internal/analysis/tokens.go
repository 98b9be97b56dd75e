package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// wordSplitter breaks text on anything outside Russian and Latin letters.
var wordSplitter = regexp.MustCompile(`[^a-zа-яё]+`)

// stopWords are high-frequency Russian function words excluded from
// analysis.
var stopWords = map[string]struct{}{
	"для": {}, "или": {}, "это": {}, "как": {}, "так": {},
	"что": {}, "где": {}, "когда": {}, "чем": {}, "все": {},
	"под": {}, "над": {}, "при": {},
}

// extractWords tokenizes a product's searchable text into lower-cased
// words, dropping tokens shorter than 3 runes and stop words.
func extractWords(p domain.Product) []string {
	parts := []string{p.Name, p.Description, p.Subcategory}
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Colors...)
	text := strings.ToLower(strings.Join(parts, " "))

	var words []string
	for _, w := range wordSplitter.Split(text, -1) {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}
