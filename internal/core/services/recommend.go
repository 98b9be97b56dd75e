package services

import (
	"context"
	"errors"
	"strings"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driving"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// Ensure RecommendationService implements the interface.
var _ driving.RecommendationService = (*RecommendationService)(nil)

const (
	// maxComplementary caps a complementary-products response.
	maxComplementary = 5

	// maxComplementaryPhrases bounds how many affinity phrases are tried.
	maxComplementaryPhrases = 3

	// perPhraseTake is how many top results each phrase contributes.
	perPhraseTake = 3

	// defaultSimilarLimit bounds SimilarProducts when no limit is given.
	defaultSimilarLimit = 5

	// similarTagCount is how many leading tags seed the similarity query.
	similarTagCount = 3
)

// staticComplementaryQueries is the fallback phrase table, used when the
// affinity graph has no relation for a category. It is independent of
// the synonym catalog and the affinity analysis.
var staticComplementaryQueries = map[domain.Category][]string{
	domain.CategoryClothing:    {"сумка аксессуары", "украшения"},
	domain.CategoryShoes:       {"одежда", "сумка"},
	domain.CategoryAccessories: {"одежда", "украшения"},
	domain.CategoryJewelry:     {"аксессуары", "одежда"},
	domain.CategoryUnderwear:   {"одежда"},
}

// defaultComplementaryQuery is used for categories missing from the
// fallback table.
const defaultComplementaryQuery = "аксессуары"

// RecommendationService suggests complementary and similar products.
type RecommendationService struct {
	engine *Engine
}

// NewRecommendationService creates a recommendation service over the
// engine's catalog.
func NewRecommendationService(engine *Engine) *RecommendationService {
	return &RecommendationService{engine: engine}
}

// ComplementaryProducts returns up to 5 in-stock products that pair with
// the given one. The source product and out-of-stock items are never
// included; an unknown id yields an empty slice.
func (r *RecommendationService) ComplementaryProducts(_ context.Context, productID string) ([]domain.Product, error) {
	logger.Section("Complementary Products")
	logger.Debug("Source product: %s", productID)

	gen, err := r.engine.snapshot()
	if err != nil {
		if errors.Is(err, domain.ErrCatalogEmpty) {
			return []domain.Product{}, nil
		}
		return nil, err
	}

	product, ok := gen.byID[productID]
	if !ok {
		logger.Debug("Product not found, no recommendations")
		return []domain.Product{}, nil
	}

	phrases := complementaryPhrases(gen, product)
	logger.Debug("Complementary phrases: %v", phrases)

	inStock := true
	filters := domain.SearchFilters{Gender: product.Gender, InStock: &inStock}

	result := make([]domain.Product, 0, maxComplementary)
	seen := map[string]struct{}{productID: {}}

	for _, phrase := range phrases {
		hits := searchGeneration(gen, phrase, filters)
		if len(hits) > perPhraseTake {
			hits = hits[:perPhraseTake]
		}
		for _, p := range hits {
			if _, dup := seen[p.ID]; dup || !p.InStock {
				continue
			}
			seen[p.ID] = struct{}{}
			result = append(result, p)
			if len(result) == maxComplementary {
				return result, nil
			}
		}
	}
	return result, nil
}

// complementaryPhrases picks the affinity-derived phrases for the
// product's category, falling back to the static table when the graph
// has no relation.
func complementaryPhrases(gen *generation, product domain.Product) []string {
	if rel, ok := gen.affinity.RelationOf(product.Category); ok {
		phrases := rel.ComplementaryQueries
		if len(phrases) > maxComplementaryPhrases {
			phrases = phrases[:maxComplementaryPhrases]
		}
		return phrases
	}

	logger.Debug("No affinity relation for %s, using static fallback", product.Category)
	if phrases, ok := staticComplementaryQueries[product.Category]; ok {
		return phrases
	}
	return []string{defaultComplementaryQuery}
}

// SimilarProducts returns products resembling the given one. The
// similarity query is built from the product's subcategory, leading tags
// and primary color; candidates must share the category or suit the same
// gender.
func (r *RecommendationService) SimilarProducts(_ context.Context, productID string, limit int) ([]domain.Product, error) {
	gen, err := r.engine.snapshot()
	if err != nil {
		if errors.Is(err, domain.ErrCatalogEmpty) {
			return []domain.Product{}, nil
		}
		return nil, err
	}

	product, ok := gen.byID[productID]
	if !ok {
		return []domain.Product{}, nil
	}
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	parts := []string{product.Subcategory}
	tags := product.Tags
	if len(tags) > similarTagCount {
		tags = tags[:similarTagCount]
	}
	parts = append(parts, tags...)
	if len(product.Colors) > 0 {
		parts = append(parts, product.Colors[0])
	}
	query := joinNonEmpty(parts)

	var similar []domain.Product
	for _, p := range searchGeneration(gen, query, domain.SearchFilters{}) {
		if p.ID == productID {
			continue
		}
		if p.Category != product.Category && p.Gender != product.Gender && p.Gender != domain.GenderUnisex {
			continue
		}
		similar = append(similar, p)
		if len(similar) == limit {
			break
		}
	}
	return similar, nil
}

func joinNonEmpty(parts []string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
