package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no actor is found in context.
func (s *Service) GetProfile(ctx context.Context) (domain.Profile, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	p, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("user.GetProfile: %w", err)
	}
	return p, nil
}

// UpdateProfile updates the authenticated user's name and avatar.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (domain.Profile, error) {
	if err := input.Validate(); err != nil {
		return domain.Profile{}, err
	}

	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Profile{}, err
	}

	before, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("user.UpdateProfile get: %w", err)
	}

	next := before
	if input.FullName != nil {
		next.FullName = domain.TrimOptional(input.FullName)
	}
	if input.AvatarURL != nil {
		next.AvatarURL = domain.TrimOptional(input.AvatarURL)
	}
	next.UpdatedAt = time.Now().UTC()

	if err := s.users.UpdateProfile(ctx, next); err != nil {
		return domain.Profile{}, fmt.Errorf("user.UpdateProfile: %w", err)
	}
	s.invalidate(ctx, actor.UserID)

	s.audit.Log(ctx, record(domain.AuditUserUpdateProfile, actor.UserID,
		map[string]any{"full_name": before.FullName, "avatar_url": before.AvatarURL},
		map[string]any{"full_name": next.FullName, "avatar_url": next.AvatarURL},
	))

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", actor.UserID.String()))

	return next, nil
}
