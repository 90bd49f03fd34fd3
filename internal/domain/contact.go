package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a qualified person or organization record. LeadID is set only
// when the contact was created by converting a lead.
type Contact struct {
	ID         uuid.UUID
	FirstName  string
	LastName   *string
	Company    *string
	JobTitle   *string
	Address    *string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
	LeadID     *uuid.UUID
	OwnerID    uuid.UUID
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Phones []ContactPhone
	Emails []ContactEmail
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	if c.LastName == nil || *c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + *c.LastName
}

// ContactPhone is a phone number owned by a contact.
type ContactPhone struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	Phone     string
	Type      PhoneType
	IsPrimary bool
	CreatedAt time.Time
}

// ContactEmail is an e-mail address owned by a contact.
type ContactEmail struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	Email     string
	Type      EmailType
	IsPrimary bool
	CreatedAt time.Time
}

// ContactDetail is a contact with its children and owner summary.
type ContactDetail struct {
	Contact
	Owner *OwnerSummary
}

// ContactDraft carries caller-supplied contact fields for create, update and
// lead conversion. Phones and Emails replace the contact's children wholesale.
type ContactDraft struct {
	FirstName  string
	LastName   *string
	Company    *string
	JobTitle   *string
	Address    *string
	City       *string
	State      *string
	Country    *string
	PostalCode *string
	Notes      *string
	Phones     []ContactPhone
	Emails     []ContactEmail
}

// Validate checks all fields and collects all errors.
func (d ContactDraft) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(d.FirstName) == "" {
		errs = append(errs, FieldError{Field: "first_name", Message: "required"})
	}

	primaries := 0
	for i, p := range d.Phones {
		field := fmt.Sprintf("phones[%d]", i)
		if strings.TrimSpace(p.Phone) == "" {
			errs = append(errs, FieldError{Field: field + ".phone", Message: "required"})
		}
		if p.Type != "" && !p.Type.IsValid() {
			errs = append(errs, FieldError{Field: field + ".type", Message: "invalid phone type"})
		}
		if p.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		errs = append(errs, FieldError{Field: "phones", Message: "only one primary phone allowed"})
	}

	primaries = 0
	for i, e := range d.Emails {
		field := fmt.Sprintf("emails[%d]", i)
		if !IsValidEmail(NormalizeEmail(e.Email)) {
			errs = append(errs, FieldError{Field: field + ".email", Message: "invalid email"})
		}
		if e.Type != "" && !e.Type.IsValid() {
			errs = append(errs, FieldError{Field: field + ".type", Message: "invalid email type"})
		}
		if e.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		errs = append(errs, FieldError{Field: "emails", Message: "only one primary email allowed"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ApplyTo returns c with the draft's fields and children. Children get fresh
// ids; when none is marked primary the first one becomes primary.
func (d ContactDraft) ApplyTo(c Contact, now time.Time) Contact {
	c.FirstName = strings.TrimSpace(d.FirstName)
	c.LastName = TrimOptional(d.LastName)
	c.Company = TrimOptional(d.Company)
	c.JobTitle = TrimOptional(d.JobTitle)
	c.Address = TrimOptional(d.Address)
	c.City = TrimOptional(d.City)
	c.State = TrimOptional(d.State)
	c.Country = TrimOptional(d.Country)
	c.PostalCode = TrimOptional(d.PostalCode)
	c.Notes = TrimOptional(d.Notes)
	c.UpdatedAt = now

	c.Phones = make([]ContactPhone, 0, len(d.Phones))
	hasPrimary := false
	for _, p := range d.Phones {
		if p.Type == "" {
			p.Type = PhoneTypeMobile
		}
		hasPrimary = hasPrimary || p.IsPrimary
		c.Phones = append(c.Phones, ContactPhone{
			ID:        uuid.New(),
			ContactID: c.ID,
			Phone:     strings.TrimSpace(p.Phone),
			Type:      p.Type,
			IsPrimary: p.IsPrimary,
			CreatedAt: now,
		})
	}
	if !hasPrimary && len(c.Phones) > 0 {
		c.Phones[0].IsPrimary = true
	}

	c.Emails = make([]ContactEmail, 0, len(d.Emails))
	hasPrimary = false
	for _, e := range d.Emails {
		if e.Type == "" {
			e.Type = EmailTypeWork
		}
		hasPrimary = hasPrimary || e.IsPrimary
		c.Emails = append(c.Emails, ContactEmail{
			ID:        uuid.New(),
			ContactID: c.ID,
			Email:     NormalizeEmail(e.Email),
			Type:      e.Type,
			IsPrimary: e.IsPrimary,
			CreatedAt: now,
		})
	}
	if !hasPrimary && len(c.Emails) > 0 {
		c.Emails[0].IsPrimary = true
	}

	return c
}
