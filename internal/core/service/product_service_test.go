package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

func TestProductService_Create_AdminOnly(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, discardLogger)

	input := ports.ProductInput{Name: "Widget", Price: 9.99, Stock: 5, Category: "tools"}

	if _, err := svc.Create(context.Background(), userPrincipal, input); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user create: expected ErrForbidden, got %v", err)
	}

	created, err := svc.Create(context.Background(), adminPrincipal, input)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected an assigned ID")
	}
	if created.Name != "Widget" || created.Price != 9.99 || created.Stock != 5 {
		t.Errorf("unexpected product: %+v", created)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps must be set")
	}
}

func TestProductService_Create_RecordsAudit(t *testing.T) {
	audit := &recordingAudit{}
	svc := NewProductService(newStubProductRepo(), audit, discardLogger)

	created, err := svc.Create(context.Background(), adminPrincipal, ports.ProductInput{Name: "Widget", Price: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(audit.entries))
	}
	entry := audit.entries[0]
	if entry.EntityType != domain.ResourceProduct || entry.Action != domain.ActionCreate || entry.EntityID != created.ID {
		t.Errorf("audit entry: got %+v", entry)
	}
}

func TestProductService_ReadsOpenToUsers(t *testing.T) {
	repo := newStubProductRepo()
	seeded := repo.seed("Widget", 10.00)
	svc := NewProductService(repo, nil, discardLogger)

	list, err := svc.List(context.Background(), userPrincipal)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}

	got, err := svc.Get(context.Background(), userPrincipal, seeded.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Widget" {
		t.Errorf("expected Widget, got %q", got.Name)
	}
}

func TestProductService_ReadsDeniedToAnonymous(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, discardLogger)

	if _, err := svc.List(context.Background(), domain.Principal{}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("anonymous list: expected ErrForbidden, got %v", err)
	}
}

func TestProductService_Update(t *testing.T) {
	repo := newStubProductRepo()
	seeded := repo.seed("Widget", 10.00)
	svc := NewProductService(repo, nil, discardLogger)

	input := ports.ProductInput{Name: "Widget v2", Price: 12.00, Stock: 3, Category: "tools"}

	if _, err := svc.Update(context.Background(), userPrincipal, seeded.ID, input); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user update: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), adminPrincipal, seeded.ID, input)
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.Name != "Widget v2" || updated.Price != 12.00 {
		t.Errorf("unexpected product after update: %+v", updated)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, discardLogger)

	_, err := svc.Update(context.Background(), adminPrincipal, "prod_missing", ports.ProductInput{Name: "X", Price: 1})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete(t *testing.T) {
	repo := newStubProductRepo()
	seeded := repo.seed("Widget", 10.00)
	svc := NewProductService(repo, nil, discardLogger)

	if err := svc.Delete(context.Background(), userPrincipal, seeded.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user delete: expected ErrForbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), adminPrincipal, seeded.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if _, err := svc.Get(context.Background(), adminPrincipal, seeded.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Errorf("deleted product must be gone, got %v", err)
	}
}
