package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// ResolveActor validates an access token and returns the caller. The role
// comes from the current profile, not the token, so role changes apply
// without re-login. Suspended and inactive accounts get ErrForbidden.
func (s *Service) ResolveActor(ctx context.Context, token string) (domain.Actor, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("auth.ResolveActor: %w", err)
	}
	if profile.Status != domain.ProfileStatusActive {
		return domain.Actor{}, domain.ErrForbidden
	}

	return domain.Actor{UserID: profile.ID, Role: profile.Role}, nil
}

// loadProfile reads through the profile cache. A miss (ErrNotFound from the
// cache) or any cache failure falls back to the database.
func (s *Service) loadProfile(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	p, err := s.cache.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "profile cache read failed",
			slog.String("user_id", id.String()),
			slog.String("error", err.Error()))
	}

	p, err = s.users.GetByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := s.cache.Set(ctx, p); err != nil {
		s.log.WarnContext(ctx, "profile cache write failed",
			slog.String("user_id", id.String()),
			slog.String("error", err.Error()))
	}
	return p, nil
}
