package deal

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

func snapshot(d domain.Deal) map[string]any {
	return map[string]any{
		"name":                d.Name,
		"lead_id":             d.LeadID,
		"contact_id":          d.ContactID,
		"owner_id":            d.OwnerID,
		"stage":               d.Stage,
		"estimated_value":     d.EstimatedValue,
		"confirmed_value":     d.ConfirmedValue,
		"expected_close_date": d.ExpectedCloseDate,
		"actual_close_date":   d.ActualCloseDate,
		"notes":               d.Notes,
	}
}

func record(action domain.AuditAction, dealID uuid.UUID, oldValues, newValues map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeDeal,
		EntityID:   &dealID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
}
