package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// OrderItemInput is a single (product, quantity) pair in an order request.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// Create validates the items, resolves current product prices, computes
	// the total, and persists the order atomically with status "pending".
	// An empty items slice or an unresolvable product yields a
	// *domain.ValidationError.
	Create(ctx context.Context, p domain.Principal, items []OrderItemInput) (*domain.Order, error)
	// List returns the caller's orders; admins see every order.
	List(ctx context.Context, p domain.Principal) ([]*domain.Order, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Order, error)
	// UpdateStatus sets the order status (admin only). Any non-empty status
	// string is accepted; there is no transition graph.
	UpdateStatus(ctx context.Context, p domain.Principal, id, status string) (*domain.Order, error)
}
