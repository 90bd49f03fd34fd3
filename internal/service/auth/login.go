package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// and ErrForbidden if the account is not active.
func (s *Service) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return AuthResult{}, err
	}

	profile, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("auth.Login get profile: %w", err)
	}

	cred, err := s.users.GetCredential(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthResult{}, domain.ErrUnauthorized
		}
		return AuthResult{}, fmt.Errorf("auth.Login get credential: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(input.Password)); err != nil {
		return AuthResult{}, domain.ErrUnauthorized
	}

	if profile.Status != domain.ProfileStatusActive {
		return AuthResult{}, fmt.Errorf("auth.Login: account %s: %w", profile.Status, domain.ErrForbidden)
	}

	result, err := s.issueToken(profile)
	if err != nil {
		return AuthResult{}, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.auditAs(ctx, profile, domain.AuditUserLogin, nil)

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", profile.ID.String()))

	return result, nil
}
