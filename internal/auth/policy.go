package auth

import (
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// CanAccess is the route-level gate. An empty required set admits any
// authenticated role. Admin passes every gate; a manager passes gates that
// explicitly admit "user" but not admin-only gates.
func CanAccess(role domain.Role, required ...domain.Role) bool {
	if !role.IsValid() {
		return false
	}
	if len(required) == 0 || role.IsAdmin() {
		return true
	}
	if slices.Contains(required, role) {
		return true
	}
	return role == domain.RoleManager && slices.Contains(required, domain.RoleUser)
}

// CanModify is the record-level permission: admins and managers may act on any
// record, plain users only on records where they appear among holders
// (owner, uploader, creator or assignee).
func CanModify(actor domain.Actor, holders ...uuid.UUID) bool {
	if actor.UserID == uuid.Nil {
		return false
	}
	if actor.Role.IsManagerOrAbove() {
		return true
	}
	return slices.Contains(holders, actor.UserID)
}

// CanReassign reports whether the actor may change a record's owner.
func CanReassign(actor domain.Actor) bool {
	return actor.UserID != uuid.Nil && actor.Role.IsManagerOrAbove()
}

// RequireModify returns domain.ErrForbidden unless CanModify holds.
func RequireModify(actor domain.Actor, holders ...uuid.UUID) error {
	if !CanModify(actor, holders...) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireRole returns domain.ErrForbidden unless CanAccess holds.
func RequireRole(actor domain.Actor, required ...domain.Role) error {
	if !CanAccess(actor.Role, required...) {
		return domain.ErrForbidden
	}
	return nil
}
