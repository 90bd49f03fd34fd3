// Package communication implements the log of calls, e-mails, meetings and
// messages exchanged with leads, contacts and deals.
package communication

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

type communicationRepo interface {
	Create(ctx context.Context, c domain.Communication) (domain.Communication, error)
	ListByLink(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Communication, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// Service manages the communication log.
type Service struct {
	log            *slog.Logger
	communications communicationRepo
	audit          auditLogger
	cfg            config.CRMConfig
}

// NewService creates a new communication service.
func NewService(logger *slog.Logger, communications communicationRepo, audit auditLogger, cfg config.CRMConfig) *Service {
	return &Service{
		log:            logger.With("service", "communication"),
		communications: communications,
		audit:          audit,
		cfg:            cfg,
	}
}

// LogInput holds one logged communication.
type LogInput struct {
	Type            domain.CommunicationType
	Direction       domain.CommunicationDirection
	Subject         *string
	Content         *string
	DurationMinutes *int
	ScheduledAt     *time.Time
	Link            domain.Link
}

// Validate checks all fields and collects all errors.
func (i LogInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "communication_type", Message: "invalid communication type"})
	}
	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "invalid direction"})
	}
	if i.DurationMinutes != nil && *i.DurationMinutes < 0 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "must not be negative"})
	}
	if i.Subject != nil && len(*i.Subject) > 300 {
		errs = append(errs, domain.FieldError{Field: "subject", Message: "max 300 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Log records a communication made by the caller.
func (s *Service) Log(ctx context.Context, input LogInput) (domain.Communication, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Communication{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Communication{}, err
	}

	c, err := s.communications.Create(ctx, domain.Communication{
		ID:              uuid.New(),
		Type:            input.Type,
		Direction:       input.Direction,
		Subject:         domain.TrimOptional(input.Subject),
		Content:         domain.TrimOptional(input.Content),
		DurationMinutes: input.DurationMinutes,
		ScheduledAt:     input.ScheduledAt,
		Link:            input.Link,
		CreatedBy:       actor.UserID,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return domain.Communication{}, fmt.Errorf("create communication: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditCommunicationCreate,
		EntityType: domain.EntityTypeCommunication,
		EntityID:   &c.ID,
		NewValues: map[string]any{
			"communication_type": c.Type,
			"direction":          c.Direction,
			"subject":            c.Subject,
		},
	})

	s.log.InfoContext(ctx, "communication logged",
		slog.String("user_id", actor.UserID.String()),
		slog.String("communication_id", c.ID.String()),
		slog.String("type", c.Type.String()),
	)
	return c, nil
}

// List returns communications attached to link, newest first.
func (s *Service) List(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Communication, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	page.Limit = s.cfg.ClampLimit(page.Limit)
	page.Offset = max(page.Offset, 0)
	return s.communications.ListByLink(ctx, link, page)
}
