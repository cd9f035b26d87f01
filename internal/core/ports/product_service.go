package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// ProductInput carries the create/update payload for a product. The
// transport layer has already validated shape (numeric non-negative price,
// required name) before this reaches the service.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
}

// ProductService defines use-case operations on the catalog. Reads are open
// to any authenticated principal; writes are admin-only via the policy.
type ProductService interface {
	List(ctx context.Context, p domain.Principal) ([]*domain.Product, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Principal, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, p domain.Principal, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
