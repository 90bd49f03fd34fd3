// Package team manages teams and their per-team memberships. Every mutation
// requires a manager or admin.
package team

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

type teamRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error)
	List(ctx context.Context) ([]domain.Team, error)
	Create(ctx context.Context, t domain.Team) (domain.Team, error)
	Update(ctx context.Context, t domain.Team) (domain.Team, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMembers(ctx context.Context, teamID uuid.UUID) ([]domain.TeamMemberWithProfile, error)
	AddMember(ctx context.Context, m domain.TeamMember) (domain.TeamMember, error)
	UpdateMemberRole(ctx context.Context, teamID, userID uuid.UUID, role domain.TeamRole) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements team administration.
type Service struct {
	log      *slog.Logger
	teams    teamRepo
	profiles profileRepo
	audit    auditLogger
	tx       txManager
}

// NewService creates a new team service.
func NewService(
	logger *slog.Logger,
	teams teamRepo,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "team"),
		teams:    teams,
		profiles: profiles,
		audit:    audit,
		tx:       tx,
	}
}
