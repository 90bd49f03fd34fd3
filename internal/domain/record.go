package domain

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Link ties a note, task, communication or document to business records.
type Link struct {
	LeadID    *uuid.UUID
	ContactID *uuid.UUID
	DealID    *uuid.UUID
}

// IsEmpty reports whether no record is linked.
func (l Link) IsEmpty() bool {
	return l.LeadID == nil && l.ContactID == nil && l.DealID == nil
}

// Primary returns the most specific linked record: deal, then contact, then lead.
func (l Link) Primary() (EntityType, uuid.UUID, bool) {
	switch {
	case l.DealID != nil:
		return EntityTypeDeal, *l.DealID, true
	case l.ContactID != nil:
		return EntityTypeContact, *l.ContactID, true
	case l.LeadID != nil:
		return EntityTypeLead, *l.LeadID, true
	}
	return "", uuid.Nil, false
}

// Note is immutable human commentary. No update or delete exists.
type Note struct {
	ID        uuid.UUID
	Content   string
	Link      Link
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// Communication is a logged call, e-mail, meeting or message.
type Communication struct {
	ID              uuid.UUID
	Type            CommunicationType
	Direction       CommunicationDirection
	Subject         *string
	Content         *string
	DurationMinutes *int
	ScheduledAt     *time.Time
	Link            Link
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

// Document is metadata for a binary stored in the object store.
type Document struct {
	ID          uuid.UUID
	Name        string
	StoragePath string
	SizeBytes   int64
	MimeType    string
	Category    DocumentCategory
	Link        Link
	UploadedBy  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SizeLabel renders the size with IEC units, e.g. "1.5 MiB".
func (d Document) SizeLabel() string {
	if d.SizeBytes < 0 {
		return humanize.IBytes(0)
	}
	return humanize.IBytes(uint64(d.SizeBytes))
}

// Activity is an append-only free-text log entry for a lead, contact or deal.
type Activity struct {
	ID          uuid.UUID
	EntityType  EntityType
	EntityID    uuid.UUID
	UserID      uuid.UUID
	Type        ActivityType
	Description string
	CreatedAt   time.Time
}
