package deal

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxNameLength  = 200
	maxNotesLength = 5000
)

// Clearable optional fields of a deal.
const (
	FieldLeadID            = "lead_id"
	FieldContactID         = "contact_id"
	FieldEstimatedValue    = "estimated_value"
	FieldConfirmedValue    = "confirmed_value"
	FieldExpectedCloseDate = "expected_close_date"
	FieldNotes             = "notes"
)

var clearableFields = []string{
	FieldLeadID, FieldContactID, FieldEstimatedValue, FieldConfirmedValue, FieldExpectedCloseDate, FieldNotes,
}

// CreateDealInput holds the parameters for creating a deal.
// OwnerID defaults to the caller.
type CreateDealInput struct {
	Name              string
	OwnerID           *uuid.UUID
	LeadID            *uuid.UUID
	ContactID         *uuid.UUID
	EstimatedValue    *decimal.Decimal
	ConfirmedValue    *decimal.Decimal
	ExpectedCloseDate *time.Time
	Notes             *string
}

// Validate checks all fields and collects all errors.
func (i CreateDealInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	if i.OwnerID != nil && *i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "invalid"})
	}
	errs = validateValue(errs, FieldEstimatedValue, i.EstimatedValue)
	errs = validateValue(errs, FieldConfirmedValue, i.ConfirmedValue)
	errs = validateNotes(errs, i.Notes)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateDealInput holds a partial edit of a deal. Nil fields are left
// unchanged; fields named in Clear are set to null. Stage and owner have
// dedicated operations.
type UpdateDealInput struct {
	DealID            uuid.UUID
	Name              *string
	LeadID            *uuid.UUID
	ContactID         *uuid.UUID
	EstimatedValue    *decimal.Decimal
	ConfirmedValue    *decimal.Decimal
	ExpectedCloseDate *time.Time
	Notes             *string
	Clear             []string
}

// Validate checks all fields and collects all errors.
func (i UpdateDealInput) Validate() error {
	var errs []domain.FieldError

	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
	}
	if i.Name == nil && i.LeadID == nil && i.ContactID == nil && i.EstimatedValue == nil &&
		i.ConfirmedValue == nil && i.ExpectedCloseDate == nil && i.Notes == nil && len(i.Clear) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateValue(errs, FieldEstimatedValue, i.EstimatedValue)
	errs = validateValue(errs, FieldConfirmedValue, i.ConfirmedValue)
	errs = validateNotes(errs, i.Notes)
	for _, f := range i.Clear {
		if !slices.Contains(clearableFields, f) {
			errs = append(errs, domain.FieldError{Field: "clear", Message: "cannot clear " + f})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStageInput holds a pipeline move.
type UpdateStageInput struct {
	DealID uuid.UUID
	Stage  domain.DealStage
	Notes  *string
}

// Validate checks all fields and collects all errors.
func (i UpdateStageInput) Validate() error {
	var errs []domain.FieldError
	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
	}
	if !i.Stage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "stage", Message: "invalid stage"})
	}
	errs = validateNotes(errs, i.Notes)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReassignInput holds the parameters for changing a deal's owner.
type ReassignInput struct {
	DealID  uuid.UUID
	OwnerID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReassignInput) Validate() error {
	var errs []domain.FieldError
	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
	}
	if i.OwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "owner_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddActivityInput holds a new activity entry for a deal.
type AddActivityInput struct {
	DealID      uuid.UUID
	Type        domain.ActivityType
	Description string
}

// Validate checks all fields and collects all errors.
func (i AddActivityInput) Validate() error {
	var errs []domain.FieldError
	if i.DealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deal_id", Message: "required"})
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

// maxDealValue is the first amount NUMERIC(14,2) cannot hold.
var maxDealValue = decimal.New(1, 12)

func validateValue(errs []domain.FieldError, field string, v *decimal.Decimal) []domain.FieldError {
	if v == nil {
		return errs
	}
	if v.IsNegative() {
		return append(errs, domain.FieldError{Field: field, Message: "must not be negative"})
	}
	if v.Round(2).GreaterThanOrEqual(maxDealValue) {
		return append(errs, domain.FieldError{Field: field, Message: "too large: must be below 1000000000000"})
	}
	return errs
}

func validateNotes(errs []domain.FieldError, notes *string) []domain.FieldError {
	if notes != nil && len(*notes) > maxNotesLength {
		return append(errs, domain.FieldError{Field: "notes", Message: "max 5000 characters"})
	}
	return errs
}

// roundValue keeps currency amounts at two decimal places.
func roundValue(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	r := v.Round(2)
	return &r
}

// dateOnly truncates an optional timestamp to its calendar date.
func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.CalendarDate(*t)
	return &d
}
