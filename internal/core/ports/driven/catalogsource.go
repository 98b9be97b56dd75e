package driven

import (
	"context"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// CatalogSource loads complete catalog snapshots. A snapshot replaces the
// previous catalog wholesale; there is no partial mutation.
type CatalogSource interface {
	// Load reads and validates a full catalog snapshot.
	Load(ctx context.Context) ([]domain.Product, error)
}

// CatalogWatcher notifies when the underlying catalog source has changed
// and a fresh snapshot should be loaded.
type CatalogWatcher interface {
	// Watch invokes onChange after each source change until ctx is done.
	Watch(ctx context.Context, onChange func()) error

	// Close releases watcher resources.
	Close() error
}
