// Package lexical implements the substring-tolerant inverted index with
// term-frequency scoring that backs keyword search.
//
// The index stores, per product, a mapping from token to a weighted term
// count accumulated across the indexed fields (name, description,
// subcategory and the synonym-extended composed search text). A query
// word matches any indexed token that contains it as a substring; every
// query word must match for a product to be a hit.
package lexical

import (
	"regexp"
	"sort"
	"strings"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.ProductIndex = (*Index)(nil)

// Per-field term weights. Name matches dominate, the composed search
// text acts as a broad catch-all.
const (
	weightName        = 3.0
	weightSubcategory = 2.0
	weightDescription = 1.5
	weightSearchText  = 1.0
)

// tokenSplitter breaks indexed text into tokens. Digits are kept so size
// and model markings remain searchable.
var tokenSplitter = regexp.MustCompile(`[^a-zа-яё0-9]+`)

// docEntry is one indexed product.
type docEntry struct {
	id     string
	tokens map[string]float64
}

// Index is an in-memory inverted index over one catalog generation.
// It is built once via Rebuild and read-only afterwards; a new catalog
// generation gets a new Index.
type Index struct {
	docs []docEntry
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Len reports the number of indexed products.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Rebuild replaces the whole index from a catalog snapshot.
func (ix *Index) Rebuild(products []domain.Product, synonyms map[string][]string) {
	ix.docs = make([]docEntry, 0, len(products))

	for _, p := range products {
		entry := docEntry{id: p.ID, tokens: make(map[string]float64)}
		entry.add(p.Name, weightName)
		entry.add(p.Description, weightDescription)
		entry.add(p.Subcategory, weightSubcategory)
		entry.add(ComposeSearchText(p, synonyms), weightSearchText)
		ix.docs = append(ix.docs, entry)
	}

	logger.Debug("Lexical index rebuilt: %d products", len(ix.docs))
}

// add tokenizes a field and accumulates weighted term counts.
func (e *docEntry) add(text string, weight float64) {
	for _, tok := range tokenize(text) {
		e.tokens[tok] += weight
	}
}

// Search returns products matching every query word, ordered by the
// accumulated term-frequency score, ties kept in catalog order.
func (ix *Index) Search(query string) []driven.IndexHit {
	words := tokenize(query)
	if len(words) == 0 {
		return nil
	}

	var hits []driven.IndexHit
	for _, doc := range ix.docs {
		score, ok := doc.score(words)
		if !ok {
			continue
		}
		hits = append(hits, driven.IndexHit{ProductID: doc.id, Score: score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return hits
}

// score sums the weighted frequency of tokens containing each query
// word. All words must match or the product is rejected.
func (e *docEntry) score(words []string) (float64, bool) {
	var total float64
	for _, w := range words {
		var wordScore float64
		for tok, weight := range e.tokens {
			if strings.Contains(tok, w) {
				wordScore += weight
			}
		}
		if wordScore == 0 {
			return 0, false
		}
		total += wordScore
	}
	return total, true
}

// ComposeSearchText builds the synonym-extended search text for one
// product: core fields lower-cased, then every synonym group whose base
// word already occurs in the text appended. The extension is
// one-directional: related words alone never pull in a group.
func ComposeSearchText(p domain.Product, synonyms map[string][]string) string {
	parts := []string{p.Name, p.Description, p.Subcategory, string(p.Category)}
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Colors...)
	text := strings.ToLower(strings.Join(parts, " "))

	bases := make([]string, 0, len(synonyms))
	for base := range synonyms {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	for _, base := range bases {
		if strings.Contains(text, base) {
			text += " " + strings.Join(synonyms[base], " ")
		}
	}
	return text
}

// tokenize lower-cases text and splits it into index tokens.
func tokenize(text string) []string {
	var tokens []string
	for _, tok := range tokenSplitter.Split(strings.ToLower(text), -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
