package domain

import (
	"time"

	"github.com/google/uuid"
)

// Page bounds list queries.
type Page struct {
	Limit  int
	Offset int
}

// LeadFilter narrows lead listings.
type LeadFilter struct {
	Search  *string
	Status  *LeadStatus
	Source  *LeadSource
	OwnerID *uuid.UUID
	Page
}

// ContactFilter narrows contact listings.
type ContactFilter struct {
	Search  *string
	OwnerID *uuid.UUID
	Page
}

// DealFilter narrows deal listings.
type DealFilter struct {
	Search    *string
	Stage     *DealStage
	OwnerID   *uuid.UUID
	LeadID    *uuid.UUID
	ContactID *uuid.UUID
	Page
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	Status     *TaskStatus
	Priority   *TaskPriority
	AssignedTo *uuid.UUID
	Link       Link
	DueBefore  *time.Time
	OpenOnly   bool
	Page
}

// AuditFilter narrows audit log listings.
type AuditFilter struct {
	Action     *AuditAction
	EntityType *EntityType
	UserID     *uuid.UUID
	Page
}
