package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs resolves a batch of product IDs in one round trip. Missing
	// IDs are simply absent from the result map; the caller decides whether
	// that is an error.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
