package ports

import (
	"context"

	"github.com/storefront/commerce-api/internal/core/domain"
)

// AuditTrail is the write side used by services after a successful
// mutation. Implementations enqueue the entry and return immediately;
// recording must never fail a user-facing request.
type AuditTrail interface {
	Record(entry domain.AuditEntry)
}

// AuditService processes dequeued audit entries.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}

// NopAuditTrail discards entries. Used where no trail is wired.
type NopAuditTrail struct{}

func (NopAuditTrail) Record(domain.AuditEntry) {}
