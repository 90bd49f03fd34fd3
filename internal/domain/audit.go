package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an immutable "who changed what" entry. UserID is nil for
// system actions.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	Action     AuditAction
	EntityType EntityType
	EntityID   *uuid.UUID
	OldValues  map[string]any
	NewValues  map[string]any
	IPAddress  *string
	UserAgent  *string
	CreatedAt  time.Time
}

// AuditEntry is an audit record enriched with the actor's e-mail.
type AuditEntry struct {
	AuditRecord
	UserEmail *string
}
