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
	"github.com/heartmarshall/crm-backend/internal/service/auditlog"
)

// UpdateLead edits descriptive fields of a lead. The owner, an admin or a
// manager may edit; converted leads stay editable.
func (s *Service) UpdateLead(ctx context.Context, input UpdateLeadInput) (domain.Lead, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Lead{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Lead{}, err
	}

	var before, updated domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.leads.GetForUpdate(txCtx, input.LeadID)
		if getErr != nil {
			return fmt.Errorf("get lead: %w", getErr)
		}
		if err := auth.RequireModify(actor, before.OwnerID); err != nil {
			return err
		}

		next := before
		if input.Name != nil {
			next.Name = strings.TrimSpace(*input.Name)
		}
		if input.Source != nil {
			next.Source = *input.Source
		}
		if input.Phone != nil {
			next.Phone = domain.TrimOptional(input.Phone)
		}
		if input.Email != nil {
			next.Email = normalizeEmail(input.Email)
		}
		if input.Notes != nil {
			next.Notes = domain.TrimOptional(input.Notes)
		}
		if input.InquiryDate != nil {
			next.InquiryDate = *input.InquiryDate
		}
		next.UpdatedAt = time.Now().UTC()

		var updateErr error
		updated, updateErr = s.leads.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update lead: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Lead{}, err
	}

	if oldValues, newValues := auditlog.Diff(snapshot(before), snapshot(updated)); len(newValues) > 0 {
		s.audit.Log(ctx, record(domain.AuditLeadUpdate, updated.ID, oldValues, newValues))
	}

	s.log.InfoContext(ctx, "lead updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("lead_id", updated.ID.String()),
	)

	return updated, nil
}

// ChangeStatus moves a lead through the funnel and appends a history entry.
// "converted" is only reachable through Convert and nothing leaves it.
// Setting the current status again is a no-op without history.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (domain.Lead, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Lead{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Lead{}, err
	}

	var (
		before, updated domain.Lead
		changed         bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.leads.GetForUpdate(txCtx, input.LeadID)
		if getErr != nil {
			return fmt.Errorf("get lead: %w", getErr)
		}
		if err := auth.RequireModify(actor, before.OwnerID); err != nil {
			return err
		}

		now := time.Now().UTC()
		next, err := before.WithStatus(input.Status, now)
		if err != nil {
			return err
		}
		if before.Status == next.Status {
			updated = before
			return nil
		}

		var updateErr error
		updated, updateErr = s.leads.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update lead status: %w", updateErr)
		}

		oldStatus := before.Status
		if err := s.leads.AddStatusChange(txCtx, domain.LeadStatusChange{
			ID:        uuid.New(),
			LeadID:    updated.ID,
			OldStatus: &oldStatus,
			NewStatus: updated.Status,
			ChangedBy: actor.UserID,
			Notes:     domain.TrimOptional(input.Notes),
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("add status history: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return domain.Lead{}, err
	}
	if !changed {
		return updated, nil
	}

	s.audit.Log(ctx, record(domain.AuditLeadStatusChange, updated.ID,
		map[string]any{"status": before.Status},
		map[string]any{"status": updated.Status},
	))

	s.log.InfoContext(ctx, "lead status changed",
		slog.String("user_id", actor.UserID.String()),
		slog.String("lead_id", updated.ID.String()),
		slog.String("from", before.Status.String()),
		slog.String("to", updated.Status.String()),
	)

	return updated, nil
}

// Reassign hands a lead to another user. Manager or admin only.
func (s *Service) Reassign(ctx context.Context, input ReassignInput) (domain.Lead, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Lead{}, err
	}
	if !auth.CanReassign(actor) {
		return domain.Lead{}, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return domain.Lead{}, err
	}

	if _, err := s.profiles.GetByID(ctx, input.OwnerID); err != nil {
		return domain.Lead{}, fmt.Errorf("get new owner: %w", err)
	}

	var before, updated domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.leads.GetForUpdate(txCtx, input.LeadID)
		if getErr != nil {
			return fmt.Errorf("get lead: %w", getErr)
		}
		if before.OwnerID == input.OwnerID {
			updated = before
			return nil
		}

		next := before
		next.OwnerID = input.OwnerID
		next.UpdatedAt = time.Now().UTC()

		var updateErr error
		updated, updateErr = s.leads.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("reassign lead: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return domain.Lead{}, err
	}
	if before.OwnerID == updated.OwnerID {
		return updated, nil
	}

	s.audit.Log(ctx, record(domain.AuditLeadReassign, updated.ID,
		map[string]any{"owner_id": before.OwnerID},
		map[string]any{"owner_id": updated.OwnerID},
	))

	s.log.InfoContext(ctx, "lead reassigned",
		slog.String("user_id", actor.UserID.String()),
		slog.String("lead_id", updated.ID.String()),
		slog.String("owner_id", updated.OwnerID.String()),
	)

	return updated, nil
}
