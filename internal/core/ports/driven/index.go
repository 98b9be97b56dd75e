package driven

import (
	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// ProductIndex provides substring-tolerant keyword search over the catalog.
// The index is derived state: it is rebuilt wholesale whenever the catalog
// or the synonym catalog changes, never mutated incrementally.
type ProductIndex interface {
	// Rebuild replaces the whole index from a catalog snapshot. The synonym
	// mapping extends each product's composed search text: when a base word
	// occurs in the text, its related words are appended.
	Rebuild(products []domain.Product, synonyms map[string][]string)

	// Search returns matching product ids ordered by relevance. Every query
	// word must match; an empty query yields no hits.
	Search(query string) []IndexHit

	// Len reports the number of indexed products.
	Len() int
}

// IndexHit is a single index match.
type IndexHit struct {
	// ProductID is the matched product.
	ProductID string

	// Score is the term-frequency weighted relevance signal.
	Score float64
}
