package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/vitrina/internal/adapters/driven/index/lexical"
	"github.com/atelier-labs/vitrina/internal/analysis"
	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(func() driven.ProductIndex { return lexical.New() }, analysis.DefaultParams())
}

// catalogFixture mirrors a small fashion catalog: overlapping style tags
// across categories so the affinity analysis has something to find.
func catalogFixture() []domain.Product {
	return []domain.Product{
		{
			ID: "p1", Name: "Классическая белая рубашка",
			Description: "Элегантная рубашка из хлопка для офиса",
			Category:    domain.CategoryClothing, Subcategory: "рубашка",
			Gender: domain.GenderMen, Price: 3500,
			Colors: []string{"белый"}, Sizes: []string{"M", "L"},
			Tags: []string{"классический", "офис"}, InStock: true,
		},
		{
			ID: "p2", Name: "Вечернее платье",
			Description: "Изысканное вечернее платье из шелка",
			Category:    domain.CategoryClothing, Subcategory: "платье",
			Gender: domain.GenderWomen, Price: 12900,
			Colors: []string{"черный"}, Sizes: []string{"S"},
			Tags: []string{"элегантный", "вечерний"}, InStock: true,
		},
		{
			ID: "p3", Name: "Классические туфли",
			Description: "Кожаные туфли под деловой костюм",
			Category:    domain.CategoryShoes, Subcategory: "туфли",
			Gender: domain.GenderMen, Price: 8900,
			Colors: []string{"черный"}, Sizes: []string{"42", "43"},
			Tags: []string{"классический", "кожа"}, InStock: true,
		},
		{
			ID: "p4", Name: "Беговые кроссовки",
			Description: "Легкие кроссовки для бега",
			Category:    domain.CategoryShoes, Subcategory: "кроссовки",
			Gender: domain.GenderUnisex, Price: 6500,
			Colors: []string{"белый"}, Sizes: []string{"40", "41"},
			Tags: []string{"спортивный", "бег"}, InStock: true,
		},
		{
			ID: "p5", Name: "Кожаный ремень",
			Description: "Ремень из натуральной кожи",
			Category:    domain.CategoryAccessories, Subcategory: "ремень",
			Gender: domain.GenderMen, Price: 2400,
			Colors: []string{"коричневый"}, Sizes: []string{"L"},
			Tags: []string{"классический", "кожа"}, InStock: true,
		},
		{
			ID: "p6", Name: "Спортивный рюкзак",
			Description: "Вместительный рюкзак для зала",
			Category:    domain.CategoryAccessories, Subcategory: "рюкзак",
			Gender: domain.GenderUnisex, Price: 3900,
			Colors: []string{"черный"}, Sizes: []string{"один размер"},
			Tags: []string{"спортивный"}, InStock: false,
		},
	}
}

func TestEngine_Replace_RejectsInvalidProduct(t *testing.T) {
	e := newTestEngine(t)

	err := e.Replace(context.Background(), []domain.Product{{ID: "x"}})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_Replace_RejectsDuplicateIDs(t *testing.T) {
	e := newTestEngine(t)
	products := catalogFixture()
	products = append(products, products[0])

	err := e.Replace(context.Background(), products)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "duplicate product id")
}

func TestEngine_Replace_InvalidCatalogKeepsPreviousGeneration(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	err := e.Replace(ctx, []domain.Product{{ID: "bad"}})
	require.Error(t, err)

	p, err := e.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Классическая белая рубашка", p.Name)
}

func TestEngine_GetProduct(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	p, err := e.GetProduct(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryShoes, p.Category)

	_, err = e.GetProduct(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_GetProduct_EmptyCatalog(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.GetProduct(context.Background(), "p1")

	assert.ErrorIs(t, err, domain.ErrCatalogEmpty)
}

func TestEngine_ProductsByCategory(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	shoes, err := e.ProductsByCategory(ctx, domain.CategoryShoes, "", 0)
	require.NoError(t, err)
	require.Len(t, shoes, 2)
	assert.Equal(t, "p3", shoes[0].ID)
	assert.Equal(t, "p4", shoes[1].ID)
}

func TestEngine_ProductsByCategory_SkipsOutOfStock(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	accessories, err := e.ProductsByCategory(ctx, domain.CategoryAccessories, "", 0)
	require.NoError(t, err)
	require.Len(t, accessories, 1)
	assert.Equal(t, "p5", accessories[0].ID, "p6 is out of stock")
}

func TestEngine_ProductsByCategory_GenderIncludesUnisex(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	shoes, err := e.ProductsByCategory(ctx, domain.CategoryShoes, domain.GenderWomen, 0)
	require.NoError(t, err)
	require.Len(t, shoes, 1)
	assert.Equal(t, "p4", shoes[0].ID, "unisex passes a women filter")
}

func TestEngine_ProductsByCategory_Limit(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	shoes, err := e.ProductsByCategory(ctx, domain.CategoryShoes, "", 1)
	require.NoError(t, err)
	assert.Len(t, shoes, 1)
}

func TestEngine_CategoryStats(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	stats, err := e.CategoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.Category]int{
		domain.CategoryClothing:    2,
		domain.CategoryShoes:       2,
		domain.CategoryAccessories: 2,
	}, stats)
}

func TestEngine_AvailableCategories_FirstObservedOrder(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	categories, err := e.AvailableCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		domain.CategoryClothing,
		domain.CategoryShoes,
		domain.CategoryAccessories,
	}, categories)
}

func TestEngine_AnalysisStats(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))

	stats, err := e.AnalysisStats(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, stats.Generation)
	assert.Equal(t, 6, stats.TotalProducts)
	assert.Greater(t, stats.SynonymGroups, 0)
	assert.Equal(t, 3, stats.CategoryRelations)
	assert.False(t, stats.LastAnalysis.IsZero())
}

func TestEngine_Replace_NewGenerationID(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	require.NoError(t, e.Replace(ctx, catalogFixture()))
	first, err := e.AnalysisStats(ctx)
	require.NoError(t, err)

	require.NoError(t, e.Replace(ctx, catalogFixture()[:3]))
	second, err := e.AnalysisStats(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.Generation, second.Generation)
	assert.Equal(t, 3, second.TotalProducts)
}

func TestEngine_Refresh(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	assert.ErrorIs(t, e.Refresh(ctx), domain.ErrCatalogEmpty)

	require.NoError(t, e.Replace(ctx, catalogFixture()))
	require.NoError(t, e.Refresh(ctx))

	stats, err := e.AnalysisStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalProducts)
}
