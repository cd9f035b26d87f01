package ports

import (
	"context"
	"time"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// RegisterInput carries the self-registration payload. The created account
// always gets the "user" role; only an admin can change it afterwards.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login, and token revocation.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user. Unknown
	// email and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token with the given ID until it would have
	// expired anyway.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
