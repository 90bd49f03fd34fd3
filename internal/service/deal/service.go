package deal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type dealRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Deal, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Deal, error)
	List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, int, error)
	ListStageHistory(ctx context.Context, dealID uuid.UUID) ([]domain.DealStageChange, error)
	Create(ctx context.Context, d domain.Deal) (domain.Deal, error)
	Update(ctx context.Context, d domain.Deal) (domain.Deal, error)
	AddStageChange(ctx context.Context, c domain.DealStageChange) error
}

type activityRepo interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Activity, error)
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

// Service owns the deal pipeline: stage moves with their history trail,
// value fields and reassignment.
type Service struct {
	log        *slog.Logger
	deals      dealRepo
	activities activityRepo
	profiles   profileRepo
	audit      auditLogger
	tx         txManager
	cfg        config.CRMConfig
}

// NewService creates a new deal service.
func NewService(
	logger *slog.Logger,
	deals dealRepo,
	activities activityRepo,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "deal"),
		deals:      deals,
		activities: activities,
		profiles:   profiles,
		audit:      audit,
		tx:         tx,
		cfg:        cfg,
	}
}
