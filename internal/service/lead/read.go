package lead

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// GetLead returns one lead. Any authenticated user may read.
func (s *Service) GetLead(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return domain.Lead{}, err
	}
	return s.leads.GetByID(ctx, id)
}

// ListLeads returns a filtered page of leads, newest first, and the total.
func (s *Service) ListLeads(ctx context.Context, f domain.LeadFilter) ([]domain.Lead, int, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, 0, err
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "invalid status")
	}
	if f.Source != nil && !f.Source.IsValid() {
		return nil, 0, domain.NewValidationError("source", "invalid source")
	}
	if f.Search != nil {
		term := domain.NormalizeSearch(*f.Search)
		f.Search = nil
		if term != "" {
			f.Search = &term
		}
	}
	f.Limit = s.cfg.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)

	return s.leads.List(ctx, f)
}

// History returns the lead's status history, newest first.
func (s *Service) History(ctx context.Context, leadID uuid.UUID) ([]domain.LeadStatusChange, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	if _, err := s.leads.GetByID(ctx, leadID); err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return s.leads.ListStatusHistory(ctx, leadID)
}

// Activities returns the lead's activity log, newest first.
func (s *Service) Activities(ctx context.Context, leadID uuid.UUID) ([]domain.Activity, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.activities.ListByEntity(ctx, domain.EntityTypeLead, leadID)
}

// AddActivity appends an activity entry to a lead the caller may modify.
func (s *Service) AddActivity(ctx context.Context, input AddActivityInput) (domain.Activity, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Activity{}, err
	}

	l, err := s.leads.GetByID(ctx, input.LeadID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("get lead: %w", err)
	}
	if err := auth.RequireModify(actor, l.OwnerID); err != nil {
		return domain.Activity{}, err
	}

	a, err := s.activities.Create(ctx, domain.Activity{
		ID:          uuid.New(),
		EntityType:  domain.EntityTypeLead,
		EntityID:    l.ID,
		UserID:      actor.UserID,
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "lead activity added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("lead_id", l.ID.String()),
		slog.String("type", string(a.Type)),
	)
	return a, nil
}
