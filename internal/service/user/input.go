package user

import (
	"net/url"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// Nil fields are left unchanged; an empty string clears the field.
type UpdateProfileInput struct {
	FullName  *string
	AvatarURL *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName == nil && i.AvatarURL == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.FullName != nil && len(*i.FullName) > 255 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}
	if i.AvatarURL != nil && *i.AvatarURL != "" {
		if len(*i.AvatarURL) > 512 {
			errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
		} else if u, err := url.ParseRequestURI(*i.AvatarURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
