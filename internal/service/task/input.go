package task

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Clearable optional fields of a task.
const (
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldReminderAt  = "reminder_at"
	FieldAssignedTo  = "assigned_to"
	FieldLeadID      = "lead_id"
	FieldContactID   = "contact_id"
	FieldDealID      = "deal_id"
)

var clearableFields = []string{
	FieldDescription, FieldDueDate, FieldReminderAt, FieldAssignedTo, FieldLeadID, FieldContactID, FieldDealID,
}

// CreateTaskInput holds a new task. Priority defaults to medium.
type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    domain.TaskPriority
	DueDate     *time.Time
	ReminderAt  *time.Time
	Link        domain.Link
	AssignedTo  *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.AssignedTo != nil && *i.AssignedTo == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "assigned_to", Message: "invalid"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTaskInput holds a partial edit of a task. Nil fields are left
// unchanged; fields named in Clear are set to null. Status has its own
// operation.
type UpdateTaskInput struct {
	TaskID      uuid.UUID
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
	DueDate     *time.Time
	ReminderAt  *time.Time
	AssignedTo  *uuid.UUID
	LeadID      *uuid.UUID
	ContactID   *uuid.UUID
	DealID      *uuid.UUID
	Clear       []string
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Priority == nil && i.DueDate == nil &&
		i.ReminderAt == nil && i.AssignedTo == nil && i.LeadID == nil && i.ContactID == nil &&
		i.DealID == nil && len(i.Clear) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateDescription(errs, i.Description)
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
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

// UpdateStatusInput holds a task status transition.
type UpdateStatusInput struct {
	TaskID uuid.UUID
	Status domain.TaskStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError
	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, d *string) []domain.FieldError {
	if d != nil && len(*d) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}
