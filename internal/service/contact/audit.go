package contact

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

func snapshot(c domain.Contact) map[string]any {
	phones := make([]string, len(c.Phones))
	for i, p := range c.Phones {
		phones[i] = p.Phone
	}
	emails := make([]string, len(c.Emails))
	for i, e := range c.Emails {
		emails[i] = e.Email
	}
	return map[string]any{
		"first_name":  c.FirstName,
		"last_name":   c.LastName,
		"company":     c.Company,
		"job_title":   c.JobTitle,
		"address":     c.Address,
		"city":        c.City,
		"state":       c.State,
		"country":     c.Country,
		"postal_code": c.PostalCode,
		"owner_id":    c.OwnerID,
		"lead_id":     c.LeadID,
		"notes":       c.Notes,
		"phones":      phones,
		"emails":      emails,
	}
}

func record(action domain.AuditAction, contactID uuid.UUID, oldValues, newValues map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeContact,
		EntityID:   &contactID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
}
