package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-labs/vitrina/internal/analysis"
	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
	"github.com/atelier-labs/vitrina/internal/core/ports/driving"
	"github.com/atelier-labs/vitrina/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.CatalogService = (*Engine)(nil)

// defaultCategoryLimit bounds ProductsByCategory when no limit is given.
const defaultCategoryLimit = 10

// generation is one immutable catalog version plus everything derived
// from it. A generation is never mutated after installation; readers
// that hold one keep a consistent view across the swap.
type generation struct {
	id         string
	products   []domain.Product
	byID       map[string]domain.Product
	catOrder   []domain.Category
	synonyms   map[string][]string
	affinity   *analysis.AffinityGraph
	index      driven.ProductIndex
	analyzedAt time.Time
}

// Engine manages catalog generations. The synonym catalog lives on the
// engine rather than the generation because its entries accumulate
// across refreshes; each generation stores an immutable view of it.
type Engine struct {
	mu       sync.RWMutex
	synonyms *analysis.SynonymCatalog
	newIndex func() driven.ProductIndex
	gen      *generation
}

// NewEngine creates an engine with the given index factory and analysis
// parameters. Every catalog replacement builds a fresh index instance.
func NewEngine(newIndex func() driven.ProductIndex, params analysis.Params) *Engine {
	return &Engine{
		synonyms: analysis.NewSynonymCatalog(params),
		newIndex: newIndex,
	}
}

// SetClock overrides the synonym catalog's time source. Useful for
// testing the staleness window.
func (e *Engine) SetClock(now func() time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.synonyms.SetClock(now)
}

// Replace atomically installs a new catalog snapshot. Derived state is
// rebuilt in the fixed order synonyms → affinity graph → lexical index
// before the snapshot becomes queryable.
func (e *Engine) Replace(_ context.Context, products []domain.Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate product id %q", domain.ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.newIndex == nil {
		return domain.ErrIndexUnavailable
	}

	e.synonyms.Refresh(products)

	affinity := analysis.NewAffinityGraph()
	affinity.Rebuild(products)

	synonyms := e.synonyms.Lookup()
	index := e.newIndex()
	index.Rebuild(products, synonyms)

	snapshot := append([]domain.Product(nil), products...)
	byID := make(map[string]domain.Product, len(snapshot))
	var catOrder []domain.Category
	for _, p := range snapshot {
		byID[p.ID] = p
		if !containsCategory(catOrder, p.Category) {
			catOrder = append(catOrder, p.Category)
		}
	}

	e.gen = &generation{
		id:         uuid.NewString(),
		products:   snapshot,
		byID:       byID,
		catOrder:   catOrder,
		synonyms:   synonyms,
		affinity:   affinity,
		index:      index,
		analyzedAt: e.synonyms.LastAnalysis(),
	}

	logger.Info("Catalog generation %s installed: %d products, %d synonym groups, %d relations",
		e.gen.id, len(snapshot), len(synonyms), affinity.Len())
	return nil
}

// Refresh re-derives state for the current catalog. The synonym catalog
// skips the analysis while it is fresh, so calling this repeatedly on an
// unchanged catalog is cheap and idempotent.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.RLock()
	gen := e.gen
	e.mu.RUnlock()
	if gen == nil {
		return domain.ErrCatalogEmpty
	}
	return e.Replace(ctx, gen.products)
}

// snapshot returns the current generation for readers.
func (e *Engine) snapshot() (*generation, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.gen == nil {
		return nil, domain.ErrCatalogEmpty
	}
	return e.gen, nil
}

// GetProduct looks up a product by id.
func (e *Engine) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	gen, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	p, ok := gen.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// ProductsByCategory lists in-stock products of one category in catalog
// order, with an optional gender filter.
func (e *Engine) ProductsByCategory(_ context.Context, category domain.Category, gender domain.Gender, limit int) ([]domain.Product, error) {
	gen, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultCategoryLimit
	}

	result := make([]domain.Product, 0, limit)
	for _, p := range gen.products {
		if p.Category != category || !p.InStock {
			continue
		}
		if gender != "" && p.Gender != gender && p.Gender != domain.GenderUnisex {
			continue
		}
		result = append(result, p)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// CategoryStats counts products per category.
func (e *Engine) CategoryStats(_ context.Context) (map[domain.Category]int, error) {
	gen, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	stats := make(map[domain.Category]int)
	for _, p := range gen.products {
		stats[p.Category]++
	}
	return stats, nil
}

// AvailableCategories lists categories in first-observed catalog order.
func (e *Engine) AvailableCategories(_ context.Context) ([]domain.Category, error) {
	gen, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	return append([]domain.Category(nil), gen.catOrder...), nil
}

// AnalysisStats reports derived-state bookkeeping for diagnostics.
func (e *Engine) AnalysisStats(_ context.Context) (driving.AnalysisStats, error) {
	gen, err := e.snapshot()
	if err != nil {
		return driving.AnalysisStats{}, err
	}
	return driving.AnalysisStats{
		Generation:        gen.id,
		TotalProducts:     len(gen.products),
		SynonymGroups:     len(gen.synonyms),
		CategoryRelations: gen.affinity.Len(),
		LastAnalysis:      gen.analyzedAt,
	}, nil
}

func containsCategory(set []domain.Category, c domain.Category) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}
