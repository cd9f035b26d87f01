package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/storefront/commerce-api/internal/core/domain"
	"github.com/storefront/commerce-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns the AuditService that persists dequeued entries.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	s.log.Debug().
		Str("entity_type", string(entry.EntityType)).
		Str("entity_id", entry.EntityID).
		Str("action", string(entry.Action)).
		Str("actor", entry.ActorID).
		Msg("audit entry recorded")

	return nil
}
