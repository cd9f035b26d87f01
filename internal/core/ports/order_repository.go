package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. An order and
// its line items are stored as a single document, so Create is atomic:
// either the whole order persists or nothing does.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByUser returns the orders owned by userID; an empty userID
	// returns every order (admin view).
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}
