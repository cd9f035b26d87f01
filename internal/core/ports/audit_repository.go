package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// AuditRepository persists audit entries to the audit_log collection.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
