package task

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

func snapshot(t domain.Task) map[string]any {
	return map[string]any{
		"title":        t.Title,
		"description":  t.Description,
		"priority":     t.Priority,
		"status":       t.Status,
		"due_date":     t.DueDate,
		"reminder_at":  t.ReminderAt,
		"lead_id":      t.Link.LeadID,
		"contact_id":   t.Link.ContactID,
		"deal_id":      t.Link.DealID,
		"assigned_to":  t.AssignedTo,
		"completed_at": t.CompletedAt,
		"completed_by": t.CompletedBy,
	}
}

func record(action domain.AuditAction, taskID uuid.UUID, oldValues, newValues map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeTask,
		EntityID:   &taskID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
}
