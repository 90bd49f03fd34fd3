package deal

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/auditlog"
)

// UpdateDeal edits name, links, values, expected close date and notes.
// It never touches the stage or its history.
func (s *Service) UpdateDeal(ctx context.Context, input UpdateDealInput) (domain.Deal, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Deal{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Deal{}, err
	}

	var before, updated domain.Deal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.deals.GetForUpdate(txCtx, input.DealID)
		if getErr != nil {
			return fmt.Errorf("get deal: %w", getErr)
		}
		if err := auth.RequireModify(actor, before.OwnerID); err != nil {
			return err
		}

		next := applyUpdate(before, input)
		next.UpdatedAt = time.Now().UTC()

		var updateErr error
		updated, updateErr = s.deals.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update deal: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Deal{}, err
	}

	if oldValues, newValues := auditlog.Diff(snapshot(before), snapshot(updated)); len(newValues) > 0 {
		s.audit.Log(ctx, record(domain.AuditDealUpdate, updated.ID, oldValues, newValues))
	}

	s.log.InfoContext(ctx, "deal updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("deal_id", updated.ID.String()),
	)

	return updated, nil
}

func applyUpdate(d domain.Deal, input UpdateDealInput) domain.Deal {
	if input.Name != nil {
		d.Name = strings.TrimSpace(*input.Name)
	}
	if input.LeadID != nil {
		d.LeadID = input.LeadID
	}
	if input.ContactID != nil {
		d.ContactID = input.ContactID
	}
	if input.EstimatedValue != nil {
		d.EstimatedValue = roundValue(input.EstimatedValue)
	}
	if input.ConfirmedValue != nil {
		d.ConfirmedValue = roundValue(input.ConfirmedValue)
	}
	if input.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = dateOnly(input.ExpectedCloseDate)
	}
	if input.Notes != nil {
		d.Notes = domain.TrimOptional(input.Notes)
	}

	cleared := func(field string) bool { return slices.Contains(input.Clear, field) }
	if cleared(FieldLeadID) {
		d.LeadID = nil
	}
	if cleared(FieldContactID) {
		d.ContactID = nil
	}
	if cleared(FieldEstimatedValue) {
		d.EstimatedValue = nil
	}
	if cleared(FieldConfirmedValue) {
		d.ConfirmedValue = nil
	}
	if cleared(FieldExpectedCloseDate) {
		d.ExpectedCloseDate = nil
	}
	if cleared(FieldNotes) {
		d.Notes = nil
	}
	return d
}

// Reassign hands a deal to another user. Manager or admin only.
func (s *Service) Reassign(ctx context.Context, input ReassignInput) (domain.Deal, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Deal{}, err
	}
	if !auth.CanReassign(actor) {
		return domain.Deal{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.Deal{}, err
	}
	if _, err := s.profiles.GetByID(ctx, input.OwnerID); err != nil {
		return domain.Deal{}, fmt.Errorf("get new owner: %w", err)
	}

	var before, updated domain.Deal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.deals.GetForUpdate(txCtx, input.DealID)
		if getErr != nil {
			return fmt.Errorf("get deal: %w", getErr)
		}
		if before.OwnerID == input.OwnerID {
			updated = before
			return nil
		}

		next := before
		next.OwnerID = input.OwnerID
		next.UpdatedAt = time.Now().UTC()

		var updateErr error
		updated, updateErr = s.deals.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("reassign deal: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Deal{}, err
	}
	if before.OwnerID == updated.OwnerID {
		return updated, nil
	}

	s.audit.Log(ctx, record(domain.AuditDealReassign, updated.ID,
		map[string]any{"owner_id": before.OwnerID},
		map[string]any{"owner_id": updated.OwnerID},
	))

	s.log.InfoContext(ctx, "deal reassigned",
		slog.String("user_id", actor.UserID.String()),
		slog.String("deal_id", updated.ID.String()),
		slog.String("owner_id", updated.OwnerID.String()),
	)

	return updated, nil
}
