package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type contactRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Contact, error)
	List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error)
	Create(ctx context.Context, c domain.Contact) (domain.Contact, error)
	Update(ctx context.Context, c domain.Contact) (domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListPhones(ctx context.Context, contactID uuid.UUID) ([]domain.ContactPhone, error)
	ListEmails(ctx context.Context, contactID uuid.UUID) ([]domain.ContactEmail, error)
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

// Service manages contacts together with their phone and e-mail children.
type Service struct {
	log        *slog.Logger
	contacts   contactRepo
	activities activityRepo
	profiles   profileRepo
	audit      auditLogger
	tx         txManager
	cfg        config.CRMConfig
}

// NewService creates a new contact service.
func NewService(
	logger *slog.Logger,
	contacts contactRepo,
	activities activityRepo,
	profiles profileRepo,
	audit auditLogger,
	tx txManager,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "contact"),
		contacts:   contacts,
		activities: activities,
		profiles:   profiles,
		audit:      audit,
		tx:         tx,
		cfg:        cfg,
	}
}
