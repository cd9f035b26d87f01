package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call: a missing role means the middleware
// never ran, so the request is unauthenticated.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}

	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	return domain.Principal{UserID: userID, Email: email, Role: role}, nil
}

// ctxToken returns the token ID and expiry recorded by the Auth middleware,
// used by logout to revoke exactly the presented token.
func ctxToken(c echo.Context) (string, time.Time, error) {
	tokenID, _ := c.Get("token_id").(string)
	if tokenID == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
	}
	exp, _ := c.Get("token_exp").(time.Time)
	return tokenID, exp, nil
}
