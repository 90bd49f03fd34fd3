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

// CreateLead inserts a lead in status "new" together with its first status
// history entry. Assigning the lead to another owner requires manager or admin.
func (s *Service) CreateLead(ctx context.Context, input CreateLeadInput) (domain.Lead, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Lead{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Lead{}, err
	}

	ownerID := actor.UserID
	if input.OwnerID != nil && *input.OwnerID != actor.UserID {
		if !auth.CanReassign(actor) {
			return domain.Lead{}, domain.ErrForbidden
		}
		if _, err := s.profiles.GetByID(ctx, *input.OwnerID); err != nil {
			return domain.Lead{}, fmt.Errorf("get owner: %w", err)
		}
		ownerID = *input.OwnerID
	}

	now := time.Now().UTC()
	var inquiry time.Time
	if input.InquiryDate != nil {
		inquiry = *input.InquiryDate
	}
	l := domain.NewLead(strings.TrimSpace(input.Name), input.Source, ownerID, inquiry, now)
	l.Phone = domain.TrimOptional(input.Phone)
	l.Email = normalizeEmail(input.Email)
	l.Notes = domain.TrimOptional(input.Notes)

	var created domain.Lead
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.leads.Create(txCtx, l)
		if createErr != nil {
			return fmt.Errorf("create lead: %w", createErr)
		}

		if err := s.leads.AddStatusChange(txCtx, domain.LeadStatusChange{
			ID:        uuid.New(),
			LeadID:    created.ID,
			NewStatus: created.Status,
			ChangedBy: actor.UserID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("add status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Lead{}, err
	}

	s.audit.Log(ctx, record(domain.AuditLeadCreate, created.ID, nil, snapshot(created)))

	s.log.InfoContext(ctx, "lead created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("lead_id", created.ID.String()),
		slog.String("source", created.Source.String()),
	)

	return created, nil
}
