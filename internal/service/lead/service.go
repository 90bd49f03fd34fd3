package lead

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type leadRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	List(ctx context.Context, f domain.LeadFilter) ([]domain.Lead, int, error)
	ListStatusHistory(ctx context.Context, leadID uuid.UUID) ([]domain.LeadStatusChange, error)
	Create(ctx context.Context, l domain.Lead) (domain.Lead, error)
	Update(ctx context.Context, l domain.Lead) (domain.Lead, error)
	AddStatusChange(ctx context.Context, c domain.LeadStatusChange) error
}

type contactRepo interface {
	Create(ctx context.Context, c domain.Contact) (domain.Contact, error)
	ReplacePhones(ctx context.Context, contactID uuid.UUID, phones []domain.ContactPhone) error
	ReplaceEmails(ctx context.Context, contactID uuid.UUID, emails []domain.ContactEmail) error
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

// Service owns the lead lifecycle: status funnel, reassignment and the
// one-way conversion into a contact.
type Service struct {
	log        *slog.Logger
	leads      leadRepo
	contacts   contactRepo
	activities activityRepo
	profiles   profileRepo
	audit      auditLogger
	tx         txManager
	cfg        config.CRMConfig
}

// NewService creates a new lead service.
func NewService(
	logger *slog.Logger,
	leads leadRepo,
	contacts contactRepo,
	activities activityRepo,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "lead"),
		leads:      leads,
		contacts:   contacts,
		activities: activities,
		profiles:   profiles,
		audit:      audit,
		tx:         tx,
		cfg:        cfg,
	}
}

// ConvertResult is the outcome of a lead conversion.
type ConvertResult struct {
	Lead    domain.Lead
	Contact domain.Contact
}
