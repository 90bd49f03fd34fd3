package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxNameLength  = 200
	maxNotesLength = 5000
)

// CreateLeadInput holds the parameters for creating a lead.
// OwnerID defaults to the caller.
type CreateLeadInput struct {
	Name        string
	Source      domain.LeadSource
	OwnerID     *uuid.UUID
	Phone       *string
	Email       *string
	Notes       *string
	InquiryDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateLeadInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid source"})
	}
	if i.OwnerID != nil && *i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "invalid"})
	}
	errs = validateEmail(errs, i.Email)
	errs = validateNotes(errs, i.Notes)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateLeadInput holds the parameters for editing a lead. Nil fields are left
// unchanged; a pointer to "" clears an optional field. Status and owner have
// dedicated operations.
type UpdateLeadInput struct {
	LeadID      uuid.UUID
	Name        *string
	Source      *domain.LeadSource
	Phone       *string
	Email       *string
	Notes       *string
	InquiryDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateLeadInput) Validate() error {
	var errs []domain.FieldError

	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
	}
	if i.Name == nil && i.Source == nil && i.Phone == nil && i.Email == nil &&
		i.Notes == nil && i.InquiryDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Source != nil && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "invalid source"})
	}
	errs = validateEmail(errs, i.Email)
	errs = validateNotes(errs, i.Notes)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangeStatusInput holds the parameters for a plain status edit.
type ChangeStatusInput struct {
	LeadID uuid.UUID
	Status domain.LeadStatus
	Notes  *string
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	errs = validateNotes(errs, i.Notes)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReassignInput holds the parameters for changing a lead's owner.
type ReassignInput struct {
	LeadID  uuid.UUID
	OwnerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReassignInput) Validate() error {
	var errs []domain.FieldError
	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
	}
	if i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ConvertInput holds the contact created from a lead. The lead's own phone
// and e-mail are not copied implicitly; callers pass them in Contact.
type ConvertInput struct {
	LeadID  uuid.UUID
	Contact domain.ContactDraft
}

// Validate checks all fields and collects all errors.
func (i ConvertInput) Validate() error {
	if i.LeadID == uuid.Nil {
		return domain.NewValidationError("lead_id", "required")
	}
	return i.Contact.Validate()
}

// AddActivityInput holds a new activity entry for a lead.
type AddActivityInput struct {
	LeadID      uuid.UUID
	Type        domain.ActivityType
	Description string
}

// Validate checks all fields and collects all errors.
func (i AddActivityInput) Validate() error {
	var errs []domain.FieldError
	if i.LeadID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lead_id", Message: "required"})
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

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateEmail(errs []domain.FieldError, email *string) []domain.FieldError {
	if email == nil {
		return errs
	}
	v := domain.NormalizeEmail(*email)
	if v != "" && !domain.IsValidEmail(v) {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func validateNotes(errs []domain.FieldError, notes *string) []domain.FieldError {
	if notes != nil && len(*notes) > maxNotesLength {
		return append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}
	return errs
}

// normalizeEmail lowercases a present e-mail; blank becomes nil.
func normalizeEmail(email *string) *string {
	email = domain.TrimOptional(email)
	if email == nil {
		return nil
	}
	v := domain.NormalizeEmail(*email)
	return &v
}
