package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

// OrderService implements order placement and administration.
type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	audit    ports.AuditTrail
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, products ports.ProductRepository, audit ports.AuditTrail, logger zerolog.Logger) *OrderService {
	if audit == nil {
		audit = ports.NopAuditTrail{}
	}
	return &OrderService{orders: orders, products: products, audit: audit, logger: logger}
}

// Create places a new order for the principal. Unit prices are resolved at
// this instant and snapshotted into the line items; the total is the sum of
// unit price × quantity. The order persists as a single document, so a
// failure in any step leaves nothing behind.
func (s *OrderService) Create(ctx context.Context, p domain.Principal, items []ports.OrderItemInput) (*domain.Order, error) {
	if err := domain.Authorize(p, domain.ActionCreate, domain.ResourceOrder, ""); err != nil {
		return nil, err
	}

	verr := domain.NewValidationError()
	if len(items) == 0 {
		return nil, verr.Add("items", "The items field is required.")
	}

	ids := make([]string, 0, len(items))
	for i, item := range items {
		if item.ProductID == "" {
			verr.Add(fmt.Sprintf("items.%d.product_id", i), "The product id field is required.")
			continue
		}
		if item.Quantity < 1 {
			verr.Add(fmt.Sprintf("items.%d.quantity", i), "The quantity must be at least 1.")
		}
		ids = append(ids, item.ProductID)
	}
	if !verr.Empty() {
		return nil, verr
	}

	resolved, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve products: %w", err)
	}

	lines := make([]domain.LineItem, 0, len(items))
	var total float64
	for i, item := range items {
		product, ok := resolved[item.ProductID]
		if !ok {
			verr.Add(fmt.Sprintf("items.%d.product_id", i), "The selected product is invalid.")
			continue
		}
		line := domain.LineItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price,
		}
		lines = append(lines, line)
		total += line.Subtotal()
	}
	if !verr.Empty() {
		return nil, verr
	}

	now := time.Now().UTC()
	order := &domain.Order{
		UserID:      p.UserID,
		Items:       lines,
		TotalAmount: total,
		Status:      domain.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", p.UserID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Str("user_id", p.UserID).
		Int("items", len(created.Items)).
		Float64("total_amount", created.TotalAmount).
		Msg("order created")

	s.audit.Record(domain.AuditEntry{
		EntityType: domain.ResourceOrder,
		EntityID:   created.ID,
		Action:     domain.ActionCreate,
		ActorID:    p.UserID,
		ActorEmail: p.Email,
		Timestamp:  now,
	})

	return created, nil
}

// List returns the principal's orders; admins see every order.
func (s *OrderService) List(ctx context.Context, p domain.Principal) ([]*domain.Order, error) {
	if err := domain.Authorize(p, domain.ActionList, domain.ResourceOrder, ""); err != nil {
		return nil, err
	}
	owner := p.UserID
	if p.IsAdmin() {
		owner = ""
	}
	return s.orders.ListByUser(ctx, owner)
}

// Get returns a single order. Non-admins only see their own.
func (s *OrderService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(p, domain.ActionRead, domain.ResourceOrder, order.UserID); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus sets the order status. Admin only; any non-empty status
// string is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, p domain.Principal, id, status string) (*domain.Order, error) {
	if err := domain.Authorize(p, domain.ActionUpdate, domain.ResourceOrder, ""); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, domain.NewValidationError().Add("status", "The status field is required.")
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", id).Str("status", status).Str("actor", p.UserID).Msg("order status updated")

	s.audit.Record(domain.AuditEntry{
		EntityType: domain.ResourceOrder,
		EntityID:   id,
		Action:     domain.ActionUpdate,
		ActorID:    p.UserID,
		ActorEmail: p.Email,
		Timestamp:  time.Now().UTC(),
	})

	return order, nil
}
