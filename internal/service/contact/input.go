package contact

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// CreateContactInput holds a new contact. OwnerID defaults to the caller.
type CreateContactInput struct {
	Contact domain.ContactDraft
	OwnerID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateContactInput) Validate() error {
	if i.OwnerID != nil && *i.OwnerID == uuid.Nil {
		return domain.NewValidationError("owner_id", "invalid")
	}
	return i.Contact.Validate()
}

// UpdateContactInput replaces a contact's editable fields and its phones and
// e-mails. The owner and the lead back-reference are not editable here.
type UpdateContactInput struct {
	ContactID uuid.UUID
	Contact   domain.ContactDraft
}

// Validate checks all fields and collects all errors.
func (i UpdateContactInput) Validate() error {
	if i.ContactID == uuid.Nil {
		return domain.NewValidationError("contact_id", "required")
	}
	return i.Contact.Validate()
}

// AddActivityInput holds a new activity entry for a contact.
type AddActivityInput struct {
	ContactID   uuid.UUID
	Type        domain.ActivityType
	Description string
}

// Validate checks all fields and collects all errors.
func (i AddActivityInput) Validate() error {
	var errs []domain.FieldError
	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_type", Message: "invalid activity type"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
