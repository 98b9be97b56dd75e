package mcp

import (
	"github.com/atelier-labs/vitrina/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides ranked catalog search.
	Search driving.SearchService

	// Catalog provides lookups, browsing and stats.
	Catalog driving.CatalogService

	// Recommend provides complementary-product suggestions.
	Recommend driving.RecommendationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Recommend == nil {
		return ErrMissingRecommendationService
	}
	return nil
}
