// Package file loads catalog snapshots from JSON files and watches them
// for changes. A changed file triggers a wholesale catalog replacement;
// there is no partial mutation.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/atelier-labs/vitrina/internal/core/domain"
	"github.com/atelier-labs/vitrina/internal/core/ports/driven"
)

// Ensure CatalogFile implements the interface.
var _ driven.CatalogSource = (*CatalogFile)(nil)

// CatalogFile reads a complete catalog snapshot from a JSON file
// containing an array of products.
type CatalogFile struct {
	path string
}

// NewCatalogFile creates a catalog source for the given path.
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: path}
}

// Path returns the backing file path.
func (c *CatalogFile) Path() string {
	return c.path
}

// Load reads and validates a full catalog snapshot. Any malformed record
// fails the whole load; a snapshot is installed completely or not at all.
func (c *CatalogFile) Load(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", c.path, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", c.path, err)
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", c.path, err)
		}
	}
	return products, nil
}
