package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work, optionally linked to a lead, contact or deal.
//
// CompletedAt and CompletedBy are set together when the task enters
// "completed" and cleared together when it leaves it.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     *time.Time
	ReminderAt  *time.Time
	Link        Link
	AssignedTo  *uuid.UUID
	CreatedBy   uuid.UUID
	CompletedAt *time.Time
	CompletedBy *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WithStatus returns the task moved to status, maintaining the completion stamp.
func (t Task) WithStatus(status TaskStatus, actorID uuid.UUID, now time.Time) (Task, error) {
	if !status.IsValid() {
		return Task{}, NewValidationError("status", "invalid status")
	}
	t.Status = status
	if status == TaskStatusCompleted {
		at := now
		by := actorID
		t.CompletedAt = &at
		t.CompletedBy = &by
	} else {
		t.CompletedAt = nil
		t.CompletedBy = nil
	}
	t.UpdatedAt = now
	return t, nil
}

// IsOverdue reports whether an open task is past its due date.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status.IsOpen()
}
