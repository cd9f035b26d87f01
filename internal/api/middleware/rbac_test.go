package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/core/domain"
)

func runRequire(t *testing.T, role string, action domain.Action, resource domain.Resource) (error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if role != "" {
		c.Set("user_id", "u_1")
		c.Set("email", "user@example.com")
		c.Set("role", role)
	}

	called := false
	next := func(echo.Context) error {
		called = true
		return nil
	}
	err := Require(action, resource)(next)(c)
	return err, called
}

func TestRequire_AdminAllowed(t *testing.T) {
	err, called := runRequire(t, domain.RoleAdmin, domain.ActionCreate, domain.ResourceProduct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("next handler must run for an allowed principal")
	}
}

func TestRequire_UserDeniedProductCreate(t *testing.T) {
	err, called := runRequire(t, domain.RoleUser, domain.ActionCreate, domain.ResourceProduct)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if called {
		t.Error("next handler must not run when denied")
	}
}

func TestRequire_UserAllowedOrderCreate(t *testing.T) {
	err, called := runRequire(t, domain.RoleUser, domain.ActionCreate, domain.ResourceOrder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("next handler must run")
	}
}

func TestRequire_MissingRoleIsUnauthenticated(t *testing.T) {
	err, called := runRequire(t, "", domain.ActionCreate, domain.ResourceProduct)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 *echo.HTTPError, got %v", err)
	}
	if called {
		t.Error("next handler must not run without a principal")
	}
}
