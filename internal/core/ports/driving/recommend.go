package driving

import (
	"context"

	"github.com/atelier-labs/vitrina/internal/core/domain"
)

// RecommendationService suggests products that complete a basket.
type RecommendationService interface {
	// ComplementaryProducts returns up to 5 in-stock products that pair
	// with the given one. An unknown id yields an empty slice.
	ComplementaryProducts(ctx context.Context, productID string) ([]domain.Product, error)

	// SimilarProducts returns up to limit products resembling the given
	// one by subcategory, tags and primary color.
	SimilarProducts(ctx context.Context, productID string, limit int) ([]domain.Product, error)
}
