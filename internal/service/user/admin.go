package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ListUsers returns a paginated list of all profiles (admin only).
func (s *Service) ListUsers(ctx context.Context, page domain.Page) ([]domain.Profile, int, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := auth.RequireRole(actor, domain.RoleAdmin); err != nil {
		return nil, 0, err
	}

	page.Limit = s.cfg.ClampLimit(page.Limit)
	page.Offset = max(page.Offset, 0)

	users, total, err := s.users.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, total, nil
}

// SetUserRole changes the global role of a user (admin only). Admins cannot
// change their own role.
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (domain.Profile, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := auth.RequireRole(actor, domain.RoleAdmin); err != nil {
		return domain.Profile{}, err
	}
	if !role.IsValid() {
		return domain.Profile{}, domain.NewValidationError("role", "invalid role: must be 'admin', 'manager' or 'user'")
	}
	if actor.UserID == targetUserID {
		return domain.Profile{}, domain.NewValidationError("role", "cannot change your own role")
	}

	before, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("user.SetUserRole get: %w", err)
	}
	if before.Role == role {
		return before, nil
	}

	if err := s.users.SetRole(ctx, targetUserID, role); err != nil {
		return domain.Profile{}, fmt.Errorf("user.SetUserRole: %w", err)
	}
	s.invalidate(ctx, targetUserID)

	s.audit.Log(ctx, record(domain.AuditUserUpdateRole, targetUserID,
		map[string]any{"role": before.Role},
		map[string]any{"role": role},
	))

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	after := before
	after.Role = role
	return after, nil
}

// SetUserStatus activates, deactivates or suspends a user (admin only).
// Admins cannot change their own status.
func (s *Service) SetUserStatus(ctx context.Context, targetUserID uuid.UUID, status domain.ProfileStatus) (domain.Profile, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := auth.RequireRole(actor, domain.RoleAdmin); err != nil {
		return domain.Profile{}, err
	}
	if !status.IsValid() {
		return domain.Profile{}, domain.NewValidationError("status", "invalid status")
	}
	if actor.UserID == targetUserID {
		return domain.Profile{}, domain.NewValidationError("status", "cannot change your own status")
	}

	before, err := s.users.GetByID(ctx, targetUserID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("user.SetUserStatus get: %w", err)
	}
	if before.Status == status {
		return before, nil
	}

	now := time.Now().UTC()
	if err := s.users.SetStatus(ctx, targetUserID, status, now); err != nil {
		return domain.Profile{}, fmt.Errorf("user.SetUserStatus: %w", err)
	}
	s.invalidate(ctx, targetUserID)

	s.audit.Log(ctx, record(domain.AuditUserUpdateStatus, targetUserID,
		map[string]any{"status": before.Status},
		map[string]any{"status": status},
	))

	s.log.InfoContext(ctx, "user status updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_status", status.String()),
	)

	after := before
	after.Status = status
	after.UpdatedAt = now
	return after, nil
}
