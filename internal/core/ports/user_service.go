package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// UpdateUserInput carries the admin user-update payload.
type UpdateUserInput struct {
	Name  string
	Email string
	Role  string
}

// UserService defines use-case operations on user accounts. Every method
// checks the principal against the authorization policy before touching
// the repository.
type UserService interface {
	List(ctx context.Context, p domain.Principal) ([]*domain.User, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.User, error)
	Update(ctx context.Context, p domain.Principal, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
