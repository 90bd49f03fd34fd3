package deal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// UpdateStage moves a deal to another pipeline stage and appends the history
// entry in the same transaction. Entering closed_won or closed_lost stamps
// the actual close date; leaving a closed stage keeps it. Moving to the
// current stage is a no-op.
func (s *Service) UpdateStage(ctx context.Context, input UpdateStageInput) (domain.Deal, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Deal{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Deal{}, err
	}

	var (
		before, updated domain.Deal
		changed         bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.deals.GetForUpdate(txCtx, input.DealID)
		if getErr != nil {
			return fmt.Errorf("get deal: %w", getErr)
		}
		if err := auth.RequireModify(actor, before.OwnerID); err != nil {
			return err
		}
		if before.Stage == input.Stage {
			updated = before
			return nil
		}

		now := time.Now().UTC()
		next, err := before.MoveTo(input.Stage, now)
		if err != nil {
			return err
		}

		var updateErr error
		updated, updateErr = s.deals.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update deal stage: %w", updateErr)
		}

		oldStage := before.Stage
		if err := s.deals.AddStageChange(txCtx, domain.DealStageChange{
			ID:        uuid.New(),
			DealID:    updated.ID,
			OldStage:  &oldStage,
			NewStage:  updated.Stage,
			ChangedBy: actor.UserID,
			Notes:     domain.TrimOptional(input.Notes),
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("add stage history: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return domain.Deal{}, err
	}
	if !changed {
		return updated, nil
	}

	s.audit.Log(ctx, record(domain.AuditDealStageChange, updated.ID,
		map[string]any{"stage": before.Stage, "actual_close_date": before.ActualCloseDate},
		map[string]any{"stage": updated.Stage, "actual_close_date": updated.ActualCloseDate},
	))

	s.log.InfoContext(ctx, "deal stage changed",
		slog.String("user_id", actor.UserID.String()),
		slog.String("deal_id", updated.ID.String()),
		slog.String("from", before.Stage.String()),
		slog.String("to", updated.Stage.String()),
	)

	return updated, nil
}
