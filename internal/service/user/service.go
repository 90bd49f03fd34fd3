package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// userRepo defines the profile storage needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	List(ctx context.Context, page domain.Page) ([]domain.Profile, int, error)
	UpdateProfile(ctx context.Context, p domain.Profile) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus, now time.Time) error
	SetRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

// profileCache is invalidated whenever a profile changes.
type profileCache interface {
	Invalidate(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// Service implements profile self-service and user administration.
type Service struct {
	log   *slog.Logger
	users userRepo
	cache profileCache
	audit auditLogger
	cfg   config.CRMConfig
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	cache profileCache,
	audit auditLogger,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		cache: cache,
		audit: audit,
		cfg:   cfg,
	}
}

func (s *Service) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.WarnContext(ctx, "profile cache invalidation failed",
			slog.String("user_id", id.String()),
			slog.String("error", err.Error()))
	}
}

func record(action domain.AuditAction, userID uuid.UUID, oldValues, newValues map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		Action:     action,
		EntityType: domain.EntityTypeUser,
		EntityID:   &userID,
		OldValues:  oldValues,
		NewValues:  newValues,
	}
}
