package team

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

// CreateTeamInput holds parameters for team creation.
type CreateTeamInput struct {
	Name        string
	Description *string
}

func (i CreateTeamInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateDescription(errs, i.Description)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTeamInput holds parameters for team update. Nil fields are left
// unchanged; an empty description clears it.
type UpdateTeamInput struct {
	TeamID      uuid.UUID
	Name        *string
	Description *string
}

func (i UpdateTeamInput) Validate() error {
	var errs []domain.FieldError
	if i.TeamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateDescription(errs, i.Description)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MemberInput identifies a membership and, for add and role change, its role.
type MemberInput struct {
	TeamID uuid.UUID
	UserID uuid.UUID
	Role   domain.TeamRole
}

func (i MemberInput) validate(needRole bool) error {
	var errs []domain.FieldError
	if i.TeamID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "team_id", Message: "required"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if needRole && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be owner, manager or member"})
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
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, d *string) []domain.FieldError {
	if d != nil && utf8.RuneCountInString(*d) > maxDescriptionLength {
		return append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	return errs
}
