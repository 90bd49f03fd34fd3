package auth

import (
	"fmt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordLength = 72

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string
	Password string
	FullName *string
}

// Validate validates the register input.
func (i RegisterInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !domain.IsValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	switch {
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("min %d characters", minPasswordLength)})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if i.FullName != nil && len(*i.FullName) > 200 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
