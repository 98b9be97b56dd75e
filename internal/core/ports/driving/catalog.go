package driving

import (
	"context"
	"time"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// CatalogService manages catalog snapshots and direct lookups.
type CatalogService interface {
	// Replace atomically installs a new catalog snapshot and rebuilds all
	// derived state (synonyms, affinity graph, lexical index) before the
	// snapshot becomes queryable.
	Replace(ctx context.Context, products []domain.Product) error

	// GetProduct looks up a product by id. Returns domain.ErrNotFound for
	// unknown ids.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// ProductsByCategory lists in-stock products of one category, with an
	// optional gender filter. A limit <= 0 defaults to 10.
	ProductsByCategory(ctx context.Context, category domain.Category, gender domain.Gender, limit int) ([]domain.Product, error)

	// CategoryStats counts products per category.
	CategoryStats(ctx context.Context) (map[domain.Category]int, error)

	// AvailableCategories lists categories present in the catalog, in the
	// order they are first observed.
	AvailableCategories(ctx context.Context) ([]domain.Category, error)

	// AnalysisStats reports derived-state bookkeeping for diagnostics.
	AnalysisStats(ctx context.Context) (AnalysisStats, error)
}

// AnalysisStats summarises the current catalog generation.
type AnalysisStats struct {
	// Generation is the id of the installed snapshot.
	Generation string

	// TotalProducts is the snapshot size.
	TotalProducts int

	// SynonymGroups counts base words in the synonym catalog.
	SynonymGroups int

	// CategoryRelations counts categories with inferred relations.
	CategoryRelations int

	// LastAnalysis is when derived state was last recomputed.
	LastAnalysis time.Time
}
