package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Register creates an active profile with the "user" role and a password
// credential. Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.FullName = domain.TrimOptional(input.FullName)

	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register hash password: %w", err)
	}

	now := time.Now().UTC()
	profile := domain.Profile{
		ID:        uuid.New(),
		Email:     input.Email,
		FullName:  input.FullName,
		Status:    domain.ProfileStatusActive,
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Email uniqueness is enforced by a DB constraint.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, profile); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if err := s.users.SetCredential(txCtx, domain.Credential{
			UserID:       profile.ID,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return AuthResult{}, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return AuthResult{}, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(profile)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.auditAs(ctx, profile, domain.AuditUserSignup, map[string]any{"email": profile.Email})

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", profile.ID.String()))

	return result, nil
}
