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

// CreateDeal inserts a deal in the "inquiry" stage and its seed history entry
// in one transaction, so every deal's history starts with exactly one entry
// whose old stage is empty.
func (s *Service) CreateDeal(ctx context.Context, input CreateDealInput) (domain.Deal, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Deal{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Deal{}, err
	}

	ownerID := actor.UserID
	if input.OwnerID != nil && *input.OwnerID != actor.UserID {
		if !auth.CanReassign(actor) {
			return domain.Deal{}, domain.ErrForbidden
		}
		if _, err := s.profiles.GetByID(ctx, *input.OwnerID); err != nil {
			return domain.Deal{}, fmt.Errorf("get owner: %w", err)
		}
		ownerID = *input.OwnerID
	}

	now := time.Now().UTC()
	d := domain.NewDeal(strings.TrimSpace(input.Name), ownerID, now)
	d.LeadID = input.LeadID
	d.ContactID = input.ContactID
	d.EstimatedValue = roundValue(input.EstimatedValue)
	d.ConfirmedValue = roundValue(input.ConfirmedValue)
	d.ExpectedCloseDate = dateOnly(input.ExpectedCloseDate)
	d.Notes = domain.TrimOptional(input.Notes)

	var created domain.Deal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.deals.Create(txCtx, d)
		if createErr != nil {
			return fmt.Errorf("create deal: %w", createErr)
		}

		note := domain.DealCreatedNote
		if err := s.deals.AddStageChange(txCtx, domain.DealStageChange{
			ID:        uuid.New(),
			DealID:    created.ID,
			NewStage:  created.Stage,
			ChangedBy: actor.UserID,
			Notes:     &note,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("add seed stage history: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Deal{}, err
	}

	s.audit.Log(ctx, record(domain.AuditDealCreate, created.ID, nil, snapshot(created)))

	s.log.InfoContext(ctx, "deal created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("deal_id", created.ID.String()),
	)

	return created, nil
}
