package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

// ProductService implements catalog reads and admin-only writes.
type ProductService struct {
	products ports.ProductRepository
	audit    ports.AuditTrail
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, audit ports.AuditTrail, logger zerolog.Logger) *ProductService {
	if audit == nil {
		audit = ports.NopAuditTrail{}
	}
	return &ProductService{products: products, audit: audit, logger: logger}
}

func (s *ProductService) List(ctx context.Context, p domain.Principal) ([]*domain.Product, error) {
	if err := domain.Authorize(p, domain.ActionList, domain.ResourceProduct, ""); err != nil {
		return nil, err
	}
	return s.products.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Product, error) {
	if err := domain.Authorize(p, domain.ActionRead, domain.ResourceProduct, ""); err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p domain.Principal, input ports.ProductInput) (*domain.Product, error) {
	if err := domain.Authorize(p, domain.ActionCreate, domain.ResourceProduct, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	s.recordAudit(p, domain.ActionCreate, created.ID, now)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, p domain.Principal, id string, input ports.ProductInput) (*domain.Product, error) {
	if err := domain.Authorize(p, domain.ActionUpdate, domain.ResourceProduct, ""); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.Category = input.Category
	product.UpdatedAt = time.Now().UTC()

	updated, err := s.products.Update(ctx, product)
	if err != nil {
		return nil, err
	}

	s.recordAudit(p, domain.ActionUpdate, id, product.UpdatedAt)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := domain.Authorize(p, domain.ActionDelete, domain.ResourceProduct, ""); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Str("actor", p.UserID).Msg("product deleted")
	s.recordAudit(p, domain.ActionDelete, id, time.Now().UTC())
	return nil
}

func (s *ProductService) recordAudit(p domain.Principal, action domain.Action, id string, ts time.Time) {
	s.audit.Record(domain.AuditEntry{
		EntityType: domain.ResourceProduct,
		EntityID:   id,
		Action:     action,
		ActorID:    p.UserID,
		ActorEmail: p.Email,
		Timestamp:  ts,
	})
}
