package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-side record of an authenticated user together
// with the user's global role.
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  *string
	AvatarURL *string
	Status    ProfileStatus
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName is the full name when set, otherwise the e-mail.
func (p Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}

// Credential holds the password hash of a profile.
type Credential struct {
	UserID       uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
}

// OwnerSummary is the read-side enrichment attached to owned records.
type OwnerSummary struct {
	ID       uuid.UUID
	FullName *string
	Email    string
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// Team groups users under an owner.
type Team struct {
	ID          uuid.UUID
	Name        string
	Description *string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TeamMember is a user's membership in a team.
type TeamMember struct {
	ID       uuid.UUID
	TeamID   uuid.UUID
	UserID   uuid.UUID
	Role     TeamRole
	JoinedAt time.Time
}

// TeamMemberWithProfile is a membership enriched with the member's profile.
type TeamMemberWithProfile struct {
	TeamMember
	Profile OwnerSummary
}
