package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
	"github.com/atelier-labs/vitrina/internal/core/ports/driving"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

const (
	// directHitThreshold is the minimum number of direct index hits;
	// below it the per-word fallback search kicks in.
	directHitThreshold = 3

	// maxSuggestions caps autocomplete output.
	maxSuggestions = 8

	// minSuggestionQuery is the shortest partial query worth completing.
	minSuggestionQuery = 2
)

// Relevance score increments. Name-prefix matches dominate, stock
// availability is a weak tie-breaker.
const (
	scoreNameContains = 10
	scoreNamePrefix   = 15
	scoreTag          = 5
	scoreSubcategory  = 3
	scoreCategory     = 2
	scoreInStock      = 1
)

// SearchService runs query expansion, index lookup with fallback,
// structured filtering and deterministic ranking.
type SearchService struct {
	engine *Engine
}

// NewSearchService creates a search service over the engine's catalog.
func NewSearchService(engine *Engine) *SearchService {
	return &SearchService{engine: engine}
}

// Search returns ranked products for a free-text query plus filters.
// An unmatched query or impossible filter combination yields an empty
// slice, never an error.
func (s *SearchService) Search(_ context.Context, query string, filters domain.SearchFilters) ([]domain.Product, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	gen, err := s.engine.snapshot()
	if err != nil {
		if errors.Is(err, domain.ErrCatalogEmpty) {
			return []domain.Product{}, nil
		}
		return nil, err
	}

	results := searchGeneration(gen, query, filters)
	logger.Info("Final results: %d", len(results))
	return results, nil
}

// searchGeneration runs the full search pipeline against one catalog
// generation. Recommendation queries reuse it so that one request never
// mixes generations.
func searchGeneration(gen *generation, query string, filters domain.SearchFilters) []domain.Product {
	var candidates []domain.Product

	if strings.TrimSpace(query) == "" {
		logger.Debug("Empty query, candidates = whole catalog")
		candidates = gen.products
	} else {
		expanded := expandQuery(query, gen.synonyms)
		logger.Debug("Expanded query: %q", expanded)

		hits := gen.index.Search(expanded)
		if len(hits) < directHitThreshold {
			logger.Debug("Direct hits below threshold (%d), running per-word fallback", len(hits))
			hits = fallbackSearch(gen.index, query)
		}
		candidates = resolveHits(gen, hits)
	}

	filtered := make([]domain.Product, 0, len(candidates))
	for _, p := range candidates {
		if filters.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	if strings.TrimSpace(query) == "" {
		// No scoring without a query: filtered catalog order stands.
		return filtered
	}
	return rankByRelevance(filtered, query)
}

// expandQuery widens the query with every synonym group reachable from
// its words. The expansion set is seeded with the original words.
func expandQuery(query string, synonyms map[string][]string) string {
	words := strings.Fields(strings.ToLower(query))

	bases := make([]string, 0, len(synonyms))
	for base := range synonyms {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	var expanded []string
	added := make(map[string]struct{})
	add := func(w string) {
		if _, ok := added[w]; ok {
			return
		}
		added[w] = struct{}{}
		expanded = append(expanded, w)
	}

	for _, w := range words {
		add(w)
	}
	for _, w := range words {
		for _, base := range bases {
			related := synonyms[base]
			if !wordTouchesGroup(w, base, related) {
				continue
			}
			add(base)
			for _, syn := range related {
				add(syn)
			}
		}
	}
	return strings.Join(expanded, " ")
}

// wordTouchesGroup reports whether a query word reaches a synonym group:
// the base word or any related word occurs inside the query word.
func wordTouchesGroup(word, base string, related []string) bool {
	if strings.Contains(word, base) {
		return true
	}
	for _, syn := range related {
		if strings.Contains(word, syn) {
			return true
		}
	}
	return false
}

// fallbackSearch unions per-word hits of the original, unexpanded query.
// The union is deduplicated by product id and keeps first-hit order.
func fallbackSearch(index driven.ProductIndex, query string) []driven.IndexHit {
	seen := make(map[string]struct{})
	var union []driven.IndexHit
	for _, word := range strings.Fields(strings.ToLower(query)) {
		for _, hit := range index.Search(word) {
			if _, ok := seen[hit.ProductID]; ok {
				continue
			}
			seen[hit.ProductID] = struct{}{}
			union = append(union, hit)
		}
	}
	return union
}

// resolveHits maps index hits back to products, keeping hit order.
func resolveHits(gen *generation, hits []driven.IndexHit) []domain.Product {
	products := make([]domain.Product, 0, len(hits))
	for _, hit := range hits {
		if p, ok := gen.byID[hit.ProductID]; ok {
			products = append(products, p)
		}
	}
	return products
}

// rankByRelevance stable-sorts products by the fixed relevance score,
// descending. Ties keep the incoming candidate order.
func rankByRelevance(products []domain.Product, query string) []domain.Product {
	q := strings.ToLower(query)

	type scored struct {
		product domain.Product
		score   int
	}
	ranked := make([]scored, len(products))
	for i, p := range products {
		ranked[i] = scored{product: p, score: relevanceScore(p, q)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]domain.Product, len(ranked))
	for i, r := range ranked {
		out[i] = r.product
	}
	return out
}

func relevanceScore(p domain.Product, q string) int {
	score := 0
	name := strings.ToLower(p.Name)
	if strings.Contains(name, q) {
		score += scoreNameContains
	}
	if strings.HasPrefix(name, q) {
		score += scoreNamePrefix
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			score += scoreTag
			break
		}
	}
	if strings.Contains(strings.ToLower(p.Subcategory), q) {
		score += scoreSubcategory
	}
	if strings.Contains(strings.ToLower(string(p.Category)), q) {
		score += scoreCategory
	}
	if p.InStock {
		score += scoreInStock
	}
	return score
}

// Suggestions returns autocomplete candidates for a partial query from
// product names, tags and subcategories.
func (s *SearchService) Suggestions(_ context.Context, partial string) ([]string, error) {
	gen, err := s.engine.snapshot()
	if err != nil {
		if errors.Is(err, domain.ErrCatalogEmpty) {
			return []string{}, nil
		}
		return nil, err
	}

	q := strings.ToLower(partial)
	if utf8.RuneCountInString(q) < minSuggestionQuery {
		return []string{}, nil
	}

	var suggestions []string
	seen := make(map[string]struct{})
	add := func(v string) {
		if _, ok := seen[v]; ok || len(suggestions) >= maxSuggestions {
			return
		}
		seen[v] = struct{}{}
		suggestions = append(suggestions, v)
	}

	for _, p := range gen.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			add(p.Name)
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), q) && utf8.RuneCountInString(tag) > 2 {
				add(tag)
			}
		}
		if strings.Contains(strings.ToLower(p.Subcategory), q) {
			add(p.Subcategory)
		}
	}
	return suggestions, nil
}
