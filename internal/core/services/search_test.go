package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

func boolPtr(b bool) *bool { return &b }

func newSearchFixture(t *testing.T) *SearchService {
	t.Helper()
	e := newTestEngine(t)
	require.NoError(t, e.Replace(context.Background(), catalogFixture()))
	return NewSearchService(e)
}

func resultIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestSearch_EmptyCatalog(t *testing.T) {
	s := NewSearchService(newTestEngine(t))

	products, err := s.Search(context.Background(), "туфли", domain.SearchFilters{})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearch_EmptyQueryReturnsCatalogOrder(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "", domain.SearchFilters{})

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5", "p6"}, resultIDs(products))
}

func TestSearch_EmptyQueryWithFilters(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "", domain.SearchFilters{
		InStock: boolPtr(true),
		Gender:  domain.GenderMen,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3", "p4", "p5"}, resultIDs(products))
}

func TestSearch_MatchesName(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "туфли", domain.SearchFilters{})

	require.NoError(t, err)
	require.NotEmpty(t, products)
	assert.Equal(t, "p3", products[0].ID)
}

func TestSearch_MatchesDescription(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "костюм", domain.SearchFilters{})

	require.NoError(t, err)
	assert.Contains(t, resultIDs(products), "p3")
}

func TestSearch_FallbackUnionForMultiWordMiss(t *testing.T) {
	s := newSearchFixture(t)

	// No product matches both words, so the per-word fallback unions
	// the hits of each word alone.
	products, err := s.Search(context.Background(), "платье кроссовки", domain.SearchFilters{})

	require.NoError(t, err)
	ids := resultIDs(products)
	assert.Contains(t, ids, "p2")
	assert.Contains(t, ids, "p4")
}

func TestSearch_NoMatchYieldsEmptyNotError(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "зонтик", domain.SearchFilters{})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearch_FiltersApply(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "классический", domain.SearchFilters{
		Category: domain.CategoryShoes,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"p3"}, resultIDs(products))
}

func TestSearch_PriceRangeFilter(t *testing.T) {
	s := newSearchFixture(t)

	products, err := s.Search(context.Background(), "", domain.SearchFilters{
		PriceRange: &domain.PriceRange{Min: 5000, Max: 10000},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p4"}, resultIDs(products))
}

func TestSearch_Deterministic(t *testing.T) {
	s := newSearchFixture(t)
	ctx := context.Background()

	first, err := s.Search(ctx, "классический кожа", domain.SearchFilters{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := s.Search(ctx, "классический кожа", domain.SearchFilters{})
		require.NoError(t, err)
		assert.Equal(t, resultIDs(first), resultIDs(again))
	}
}

func TestExpandQuery_SeedsWithOriginalWords(t *testing.T) {
	expanded := expandQuery("Зонтик", map[string][]string{})

	assert.Equal(t, "зонтик", expanded)
}

func TestExpandQuery_ReachesGroupThroughBase(t *testing.T) {
	synonyms := map[string][]string{"туфли": {"ботинки", "обувь"}}

	expanded := expandQuery("туфли", synonyms)

	assert.Equal(t, "туфли ботинки обувь", expanded)
}

func TestExpandQuery_ReachesGroupThroughRelatedWord(t *testing.T) {
	synonyms := map[string][]string{"черный": {"black", "темный"}}

	expanded := expandQuery("black", synonyms)

	assert.Equal(t, "black черный темный", expanded)
}

func TestExpandQuery_Deduplicates(t *testing.T) {
	synonyms := map[string][]string{
		"кожа":    {"кожаный"},
		"кожаный": {"кожа"},
	}

	expanded := expandQuery("кожа кожаный", synonyms)

	assert.Equal(t, "кожа кожаный", expanded)
}

func TestRankByRelevance_NamePrefixFirst(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Сумка с платьем в тон", InStock: true},
		{ID: "b", Name: "Платье летнее", InStock: true},
		{ID: "c", Name: "Ремень", Subcategory: "платье", InStock: true},
	}

	ranked := rankByRelevance(products, "платье")

	assert.Equal(t, []string{"b", "a", "c"}, resultIDs(ranked))
}

func TestRankByRelevance_StockBreaksTies(t *testing.T) {
	products := []domain.Product{
		{ID: "out", Name: "Платье вечернее", InStock: false},
		{ID: "in", Name: "Платье летнее", InStock: true},
	}

	ranked := rankByRelevance(products, "платье")

	assert.Equal(t, []string{"in", "out"}, resultIDs(ranked))
}

func TestSuggestions(t *testing.T) {
	s := newSearchFixture(t)

	suggestions, err := s.Suggestions(context.Background(), "класс")

	require.NoError(t, err)
	assert.Contains(t, suggestions, "Классическая белая рубашка")
	assert.Contains(t, suggestions, "классический")
	assert.LessOrEqual(t, len(suggestions), 8)
}

func TestSuggestions_ShortQuery(t *testing.T) {
	s := newSearchFixture(t)

	suggestions, err := s.Suggestions(context.Background(), "к")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestions_EmptyCatalog(t *testing.T) {
	s := NewSearchService(newTestEngine(t))

	suggestions, err := s.Suggestions(context.Background(), "туфли")

	require.NoError(t, err)
	assert.Empty(t, suggestions)
}
