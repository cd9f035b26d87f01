package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// Require enforces the authorization policy for a collection-level action.
// Owner-scoped checks (reading your own order or profile) happen in the
// service layer through the same domain.Authorize function once the record
// owner is known.
func Require(action domain.Action, resource domain.Resource) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated.")
			}
			userID, _ := c.Get("user_id").(string)
			email, _ := c.Get("email").(string)

			p := domain.Principal{UserID: userID, Email: email, Role: role}
			if err := domain.Authorize(p, action, resource, ""); err != nil {
				return err
			}
			return next(c)
		}
	}
}
