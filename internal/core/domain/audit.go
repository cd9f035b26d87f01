package domain

import "time"

// AuditEntry records a successful mutation for the admin audit trail.
// Entries for the same EntityID are persisted in the order they occurred.
type AuditEntry struct {
	EntityType Resource
	EntityID   string
	Action     Action
	ActorID    string
	ActorEmail string
	Timestamp  time.Time
}
