package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestSearchFilters_Matches_Empty(t *testing.T) {
	assert.True(t, SearchFilters{}.Matches(validProduct()))
}

func TestSearchFilters_Matches_Category(t *testing.T) {
	f := SearchFilters{Category: CategoryClothing}
	assert.True(t, f.Matches(validProduct()))

	f.Category = CategoryShoes
	assert.False(t, f.Matches(validProduct()))
}

func TestSearchFilters_Matches_GenderUnisexAlwaysPasses(t *testing.T) {
	p := validProduct()
	p.Gender = GenderUnisex

	f := SearchFilters{Gender: GenderMen}
	assert.True(t, f.Matches(p))

	p.Gender = GenderWomen
	assert.False(t, f.Matches(p))
}

func TestSearchFilters_Matches_InStock(t *testing.T) {
	f := SearchFilters{InStock: boolPtr(false)}
	assert.False(t, f.Matches(validProduct()))

	f.InStock = boolPtr(true)
	assert.True(t, f.Matches(validProduct()))
}

func TestSearchFilters_Matches_PriceRange(t *testing.T) {
	f := SearchFilters{PriceRange: &PriceRange{Min: 4000, Max: 5000}}
	assert.True(t, f.Matches(validProduct()))

	f.PriceRange = &PriceRange{Min: 0, Max: 100}
	assert.False(t, f.Matches(validProduct()))
}

func TestSearchFilters_Matches_InvertedPriceRangeMatchesNothing(t *testing.T) {
	// Min > Max is accepted as given; it simply never matches.
	f := SearchFilters{PriceRange: &PriceRange{Min: 5000, Max: 1000}}
	assert.False(t, f.Matches(validProduct()))
}

func TestSearchFilters_Matches_ColorsSubstring(t *testing.T) {
	p := validProduct()
	p.Colors = []string{"темно-синий"}

	f := SearchFilters{Colors: []string{"синий"}}
	assert.True(t, f.Matches(p))

	f.Colors = []string{"зеленый"}
	assert.False(t, f.Matches(p))
}

func TestSearchFilters_Matches_SizesExact(t *testing.T) {
	f := SearchFilters{Sizes: []string{"M"}}
	assert.True(t, f.Matches(validProduct()))

	f.Sizes = []string{"XXL"}
	assert.False(t, f.Matches(validProduct()))
}
