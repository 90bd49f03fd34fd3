// Package task implements task tracking: creation, edits, the status
// transition with its completion stamp, and overdue listings.
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error)
	List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, int, error)
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Update(ctx context.Context, t domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// Service manages tasks.
type Service struct {
	log      *slog.Logger
	tasks    taskRepo
	profiles profileRepo
	audit    auditLogger
	cfg      config.CRMConfig
	now      func() time.Time
}

// NewService creates a new task service.
func NewService(
	logger *slog.Logger,
	tasks taskRepo,
	profiles profileRepo,
	audit auditLogger,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "task"),
		tasks:    tasks,
		profiles: profiles,
		audit:    audit,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// holders are the users with record-level permission on a task besides
// managers and admins.
func holders(t domain.Task) []uuid.UUID {
	ids := []uuid.UUID{t.CreatedBy}
	if t.AssignedTo != nil {
		ids = append(ids, *t.AssignedTo)
	}
	return ids
}
