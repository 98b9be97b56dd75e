package driving

import (
	"context"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// SearchService provides ranked catalog search to external actors.
type SearchService interface {
	// Search runs query expansion, index lookup with fallback, filtering
	// and deterministic ranking. An unmatched query yields an empty slice,
	// never an error.
	Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.Product, error)

	// Suggestions returns up to 8 autocomplete candidates for a partial
	// query, drawn from product names, tags and subcategories.
	Suggestions(ctx context.Context, partial string) ([]string, error)
}
