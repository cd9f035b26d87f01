package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/api/metrics"
	"github.com/storefront/commerce-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// shapes are fixed by the client contract: 401 carries exactly
// {"message": "Unauthenticated."}; 422 adds an errors map listing every
// violated field.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Keeps unauthenticated (401), forbidden (403), and validation (422)
//     responses disjoint so clients can branch on them.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		switch code {
		case http.StatusUnauthorized:
			metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
		case http.StatusForbidden:
			metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
		case http.StatusUnprocessableEntity:
			metrics.ValidationFailuresTotal.Inc()
		}

		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Field-level validation failures → 422 with every violated field.
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity, errorResponse{
			Message: "The given data was invalid.",
			Errors:  verr.Fields,
		}
	}

	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusUnauthorized {
			return http.StatusUnauthorized, errorResponse{Message: "Unauthenticated."}
		}
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Message: "Unauthenticated."}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: "This action is unauthorized."}
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Failed login is a 422 on the email field, indistinguishable
		// between unknown account and wrong password.
		return http.StatusUnprocessableEntity, errorResponse{
			Message: "The given data was invalid.",
			Errors:  map[string][]string{"email": {"These credentials do not match our records."}},
		}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusUnprocessableEntity, errorResponse{
			Message: "The given data was invalid.",
			Errors:  map[string][]string{"email": {"The email has already been taken."}},
		}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Message: "user not found"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{Message: "product not found"}
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, errorResponse{Message: "order not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
}
