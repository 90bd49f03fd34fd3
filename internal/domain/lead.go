package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead is an unqualified inbound inquiry progressing through the status funnel.
//
// Status and ConvertedToContactID change together only through Convert:
// Status == LeadStatusConverted if and only if ConvertedToContactID != nil.
type Lead struct {
	ID                   uuid.UUID
	Name                 string
	Phone                *string
	Email                *string
	Source               LeadSource
	Status               LeadStatus
	OwnerID              uuid.UUID
	InquiryDate          time.Time
	Notes                *string
	ConvertedToContactID *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewLead returns a lead in the initial "new" status. A zero inquiryDate
// defaults to now.
func NewLead(name string, source LeadSource, ownerID uuid.UUID, inquiryDate, now time.Time) Lead {
	if inquiryDate.IsZero() {
		inquiryDate = now
	}
	return Lead{
		ID:          uuid.New(),
		Name:        name,
		Source:      source,
		Status:      LeadStatusNew,
		OwnerID:     ownerID,
		InquiryDate: inquiryDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsConverted reports whether the lead has been turned into a contact.
func (l Lead) IsConverted() bool {
	return l.Status == LeadStatusConverted
}

// CheckStatusEdit validates a plain status edit from one status to another.
// "converted" is reachable only through Convert and is terminal.
func CheckStatusEdit(from, to LeadStatus) error {
	if !to.IsValid() {
		return NewValidationError("status", "invalid status")
	}

	switch from {
	case LeadStatusConverted:
		return ErrConflict
	case LeadStatusNew, LeadStatusContacted, LeadStatusInterested, LeadStatusLost:
		switch to {
		case LeadStatusNew, LeadStatusContacted, LeadStatusInterested, LeadStatusLost:
			return nil
		case LeadStatusConverted:
			return NewValidationError("status", "use lead conversion to mark a lead converted")
		}
	}
	return NewValidationError("status", "invalid current status")
}

// WithStatus returns the lead moved to a new status via a plain status edit.
func (l Lead) WithStatus(to LeadStatus, now time.Time) (Lead, error) {
	if err := CheckStatusEdit(l.Status, to); err != nil {
		return Lead{}, err
	}
	l.Status = to
	l.UpdatedAt = now
	return l, nil
}

// Convert returns the lead in its terminal converted state, linked to contactID.
func (l Lead) Convert(contactID uuid.UUID, now time.Time) (Lead, error) {
	if l.IsConverted() || l.ConvertedToContactID != nil {
		return Lead{}, ErrConflict
	}
	if contactID == uuid.Nil {
		return Lead{}, NewValidationError("contact_id", "required")
	}
	l.Status = LeadStatusConverted
	l.ConvertedToContactID = &contactID
	l.UpdatedAt = now
	return l, nil
}

// LeadStatusChange is one append-only entry of a lead's status history.
// OldStatus is nil for the entry recorded at creation.
type LeadStatusChange struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	OldStatus *LeadStatus
	NewStatus LeadStatus
	ChangedBy uuid.UUID
	Notes     *string
	CreatedAt time.Time
}

// LeadWithOwner is a lead enriched with its owner's profile summary.
type LeadWithOwner struct {
	Lead
	Owner *OwnerSummary
}
