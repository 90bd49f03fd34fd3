package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Logout records the logout of the authenticated user. Access tokens are
// stateless and expire on their own.
func (s *Service) Logout(ctx context.Context) error {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditUserLogout,
		EntityType: domain.EntityTypeUser,
		EntityID:   &actor.UserID,
	})

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", actor.UserID.String()))
	return nil
}
