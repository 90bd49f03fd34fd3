package lead

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

func snapshot(l domain.Lead) map[string]any {
	return map[string]any{
		"name":                    l.Name,
		"phone":                   l.Phone,
		"email":                   l.Email,
		"source":                  l.Source,
		"status":                  l.Status,
		"owner_id":                l.OwnerID,
		"inquiry_date":            l.InquiryDate,
		"notes":                   l.Notes,
		"converted_to_contact_id": l.ConvertedToContactID,
	}
}

func record(action domain.AuditAction, leadID uuid.UUID, oldValues, newValues map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeLead,
		EntityID:   &leadID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
}
