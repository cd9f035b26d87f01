package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

// UserService implements user administration plus self-profile reads.
type UserService struct {
	users  ports.UserRepository
	audit  ports.AuditTrail
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditTrail, logger zerolog.Logger) *UserService {
	if audit == nil {
		audit = ports.NopAuditTrail{}
	}
	return &UserService{users: users, audit: audit, logger: logger}
}

func (s *UserService) List(ctx context.Context, p domain.Principal) ([]*domain.User, error) {
	if err := domain.Authorize(p, domain.ActionList, domain.ResourceUser, ""); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Get returns a user record. Non-admins can only fetch themselves.
func (s *UserService) Get(ctx context.Context, p domain.Principal, id string) (*domain.User, error) {
	if err := domain.Authorize(p, domain.ActionRead, domain.ResourceUser, id); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Update rewrites name, email, and role. Admin only: the policy denies the
// update action on users to everyone else, which also blocks a user from
// promoting their own (or anyone else's) role to admin.
func (s *UserService) Update(ctx context.Context, p domain.Principal, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := domain.Authorize(p, domain.ActionUpdate, domain.ResourceUser, ""); err != nil {
		return nil, err
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.NewValidationError().Add("role", "The selected role is invalid.")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Role = input.Role
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("actor", p.UserID).Msg("user updated")
	s.recordAudit(p, domain.ActionUpdate, id, user.UpdatedAt)
	return updated, nil
}

// Delete removes the user record entirely; a later lookup by the same ID
// fails with ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, p domain.Principal, id string) error {
	if err := domain.Authorize(p, domain.ActionDelete, domain.ResourceUser, ""); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("actor", p.UserID).Msg("user deleted")
	s.recordAudit(p, domain.ActionDelete, id, time.Now().UTC())
	return nil
}

func (s *UserService) recordAudit(p domain.Principal, action domain.Action, id string, ts time.Time) {
	s.audit.Record(domain.AuditEntry{
		EntityType: domain.ResourceUser,
		EntityID:   id,
		Action:     action,
		ActorID:    p.UserID,
		ActorEmail: p.Email,
		Timestamp:  ts,
	})
}
