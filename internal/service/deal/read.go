package deal

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

// GetDeal returns one deal.
func (s *Service) GetDeal(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return domain.Deal{}, err
	}
	return s.deals.GetByID(ctx, id)
}

// ListDeals returns a filtered page of deals, newest first, and the total.
func (s *Service) ListDeals(ctx context.Context, f domain.DealFilter) ([]domain.Deal, int, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, 0, err
	}
	if f.Stage != nil && !f.Stage.IsValid() {
		return nil, 0, domain.NewValidationError("stage", "invalid stage")
	}
	f.Search = normalizeSearch(f.Search)
	f.Limit = s.cfg.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)

	return s.deals.List(ctx, f)
}

// Pipeline groups every deal matching f into the five stage columns with
// count and total display value. Paging in f is ignored.
func (s *Service) Pipeline(ctx context.Context, f domain.DealFilter) ([]domain.PipelineColumn, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	f.Search = normalizeSearch(f.Search)
	f.Stage = nil
	f.Page = domain.Page{}

	deals, _, err := s.deals.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return domain.BuildPipeline(deals), nil
}

// History returns the deal's stage history, newest first.
func (s *Service) History(ctx context.Context, dealID uuid.UUID) ([]domain.DealStageChange, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	if _, err := s.deals.GetByID(ctx, dealID); err != nil {
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return s.deals.ListStageHistory(ctx, dealID)
}

// Activities returns the deal's activity log, newest first.
func (s *Service) Activities(ctx context.Context, dealID uuid.UUID) ([]domain.Activity, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.activities.ListByEntity(ctx, domain.EntityTypeDeal, dealID)
}

// AddActivity appends an activity entry to a deal the caller may modify.
func (s *Service) AddActivity(ctx context.Context, input AddActivityInput) (domain.Activity, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Activity{}, err
	}

	d, err := s.deals.GetByID(ctx, input.DealID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("get deal: %w", err)
	}
	if err := auth.RequireModify(actor, d.OwnerID); err != nil {
		return domain.Activity{}, err
	}

	a, err := s.activities.Create(ctx, domain.Activity{
		ID:          uuid.New(),
		EntityType:  domain.EntityTypeDeal,
		EntityID:    d.ID,
		UserID:      actor.UserID,
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "deal activity added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("deal_id", d.ID.String()),
	)
	return a, nil
}

func normalizeSearch(search *string) *string {
	if search == nil {
		return nil
	}
	term := domain.NormalizeSearch(*search)
	if term == "" {
		return nil
	}
	return &term
}
