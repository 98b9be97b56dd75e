// Package catalog ships the built-in demo catalog. It is used when no
// catalog file is configured, so the engine is explorable out of the
// box.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
)

//go:embed demo_catalog.json
var demoJSON []byte

// Demo parses the embedded demo catalog.
func Demo() ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(demoJSON, &products); err != nil {
		return nil, fmt.Errorf("parsing demo catalog: %w", err)
	}
	return products, nil
}

// Ensure DemoSource implements the interface.
var _ driven.CatalogSource = (*DemoSource)(nil)

// DemoSource serves the embedded demo catalog as a catalog source.
type DemoSource struct{}

// Load returns the demo products.
func (DemoSource) Load(_ context.Context) ([]domain.Product, error) {
	return Demo()
}
