package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// userRepo defines the profile and credential storage needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (domain.Profile, error)
	Create(ctx context.Context, p domain.Profile) error
	SetCredential(ctx context.Context, c domain.Credential) error
	GetCredential(ctx context.Context, userID uuid.UUID) (domain.Credential, error)
}

// profileCache defines the identity cache consulted on every request.
type profileCache interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	Set(ctx context.Context, p domain.Profile) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.Role) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.Role, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// Service implements registration, login and identity resolution.
type Service struct {
	log   *slog.Logger
	users userRepo
	cache profileCache
	tx    txManager
	jwt   jwtManager
	audit auditLogger
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	cache profileCache,
	tx txManager,
	jwt jwtManager,
	audit auditLogger,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		cache: cache,
		tx:    tx,
		jwt:   jwt,
		audit: audit,
		cfg:   cfg,
	}
}

// issueToken generates an access token for the given profile.
func (s *Service) issueToken(p domain.Profile) (AuthResult, error) {
	token, expiresAt, err := s.jwt.GenerateAccessToken(p.ID, p.Role)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate access token: %w", err)
	}
	return AuthResult{AccessToken: token, ExpiresAt: expiresAt, Profile: p}, nil
}

// auditAs writes an audit entry attributed to p, for flows that run before
// the caller has an identity in ctx.
func (s *Service) auditAs(ctx context.Context, p domain.Profile, action domain.AuditAction, newValues map[string]any) {
	ctx = auth.WithActor(ctx, domain.Actor{UserID: p.ID, Role: p.Role})
	s.audit.Log(ctx, domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeUser,
		EntityID:   &p.ID,
		NewValues:  newValues,
	})
}
