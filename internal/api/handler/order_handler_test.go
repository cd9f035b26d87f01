package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/api/handler"
	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type stubOrderService struct {
	createFn func(ctx context.Context, p domain.Principal, items []ports.OrderItemInput) (*domain.Order, error)
	listFn   func(ctx context.Context, p domain.Principal) ([]*domain.Order, error)
	getFn    func(ctx context.Context, p domain.Principal, id string) (*domain.Order, error)
	updateFn func(ctx context.Context, p domain.Principal, id, status string) (*domain.Order, error)
}

func (s *stubOrderService) Create(ctx context.Context, p domain.Principal, items []ports.OrderItemInput) (*domain.Order, error) {
	return s.createFn(ctx, p, items)
}

func (s *stubOrderService) List(ctx context.Context, p domain.Principal) ([]*domain.Order, error) {
	return s.listFn(ctx, p)
}

func (s *stubOrderService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Order, error) {
	return s.getFn(ctx, p, id)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, p domain.Principal, id, status string) (*domain.Order, error) {
	return s.updateFn(ctx, p, id, status)
}

func orderRoutes(stub *stubOrderService, role string) *echo.Echo {
	e := newEcho()
	h := handler.NewOrderHandler(stub)
	g := e.Group("/api", asPrincipal("u_1", "user@example.com", role))
	g.GET("/orders", h.List)
	g.GET("/orders/:id", h.Get)
	g.POST("/orders", h.Create)
	g.PUT("/orders/:id", h.UpdateStatus)
	return e
}

func TestOrderHandler_Create_Success(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(_ context.Context, p domain.Principal, items []ports.OrderItemInput) (*domain.Order, error) {
			if p.UserID != "u_1" {
				t.Fatalf("unexpected principal: %+v", p)
			}
			if len(items) != 2 || items[0].ProductID != "prod_1" || items[0].Quantity != 2 {
				t.Fatalf("unexpected items: %+v", items)
			}
			return &domain.Order{
				ID:     "order_1",
				UserID: p.UserID,
				Items: []domain.LineItem{
					{ProductID: "prod_1", ProductName: "Widget", Quantity: 2, UnitPrice: 10},
					{ProductID: "prod_2", ProductName: "Gadget", Quantity: 1, UnitPrice: 20},
				},
				TotalAmount: 40,
				Status:      domain.OrderStatusPending,
			}, nil
		},
	}
	e := orderRoutes(stub, domain.RoleUser)

	rec := doJSON(e, http.MethodPost, "/api/orders",
		`{"items":[{"product_id":"prod_1","quantity":2},{"product_id":"prod_2","quantity":1}]}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["id"] != "order_1" || body["status"] != "pending" || body["total_amount"] != 40.0 {
		t.Errorf("unexpected body: %v", body)
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 items in response, got %v", body["items"])
	}
	first, _ := items[0].(map[string]any)
	if first["product_name"] != "Widget" || first["unit_price"] != 10.0 {
		t.Errorf("line items must carry the snapshot, got %v", first)
	}
}

func TestOrderHandler_Create_EmptyItems(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(_ context.Context, _ domain.Principal, items []ports.OrderItemInput) (*domain.Order, error) {
			if len(items) != 0 {
				t.Fatalf("expected no items, got %+v", items)
			}
			return nil, domain.NewValidationError().Add("items", "The items field is required.")
		},
	}
	e := orderRoutes(stub, domain.RoleUser)

	rec := doJSON(e, http.MethodPost, "/api/orders", `{"items":[]}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	msgs := fieldErrors(t, rec, "items")
	if len(msgs) != 1 || msgs[0] != "The items field is required." {
		t.Errorf("unexpected items errors: %v", msgs)
	}
}

func TestOrderHandler_Create_UnknownProduct(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(context.Context, domain.Principal, []ports.OrderItemInput) (*domain.Order, error) {
			return nil, domain.NewValidationError().Add("items.0.product_id", "The selected product is invalid.")
		},
	}
	e := orderRoutes(stub, domain.RoleUser)

	rec := doJSON(e, http.MethodPost, "/api/orders",
		`{"items":[{"product_id":"prod_missing","quantity":1}]}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(fieldErrors(t, rec, "items.0.product_id")) == 0 {
		t.Error("expected a violation on items.0.product_id")
	}
}

func TestOrderHandler_Get_Forbidden(t *testing.T) {
	stub := &stubOrderService{
		getFn: func(context.Context, domain.Principal, string) (*domain.Order, error) {
			return nil, domain.ErrForbidden
		},
	}
	e := orderRoutes(stub, domain.RoleUser)

	rec := doJSON(e, http.MethodGet, "/api/orders/order_2", "")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "This action is unauthorized." {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestOrderHandler_List(t *testing.T) {
	stub := &stubOrderService{
		listFn: func(context.Context, domain.Principal) ([]*domain.Order, error) {
			return []*domain.Order{{ID: "order_1", Status: domain.OrderStatusPending}}, nil
		},
	}
	e := orderRoutes(stub, domain.RoleUser)

	rec := doJSON(e, http.MethodGet, "/api/orders", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(list) != 1 || list[0]["id"] != "order_1" {
		t.Errorf("unexpected list: %v", list)
	}
}

func TestOrderHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubOrderService{
		listFn: func(context.Context, domain.Principal) ([]*domain.Order, error) {
			return nil, nil
		},
	}
	e := orderRoutes(stub, domain.RoleUser)

	rec := doJSON(e, http.MethodGet, "/api/orders", "")

	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("empty list must serialize as [], got %q", got)
	}
}

func TestOrderHandler_UpdateStatus_Success(t *testing.T) {
	stub := &stubOrderService{
		updateFn: func(_ context.Context, _ domain.Principal, id, status string) (*domain.Order, error) {
			if id != "order_1" || status != "shipped" {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Order{ID: id, Status: status}, nil
		},
	}
	e := orderRoutes(stub, domain.RoleAdmin)

	rec := doJSON(e, http.MethodPut, "/api/orders/order_1", `{"status":"shipped"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["status"] != "shipped" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestOrderHandler_UpdateStatus_MissingStatus(t *testing.T) {
	stub := &stubOrderService{
		updateFn: func(context.Context, domain.Principal, string, string) (*domain.Order, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	}
	e := orderRoutes(stub, domain.RoleAdmin)

	rec := doJSON(e, http.MethodPut, "/api/orders/order_1", `{}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(fieldErrors(t, rec, "status")) == 0 {
		t.Error("expected a violation on status")
	}
}
