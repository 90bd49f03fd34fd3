package lead

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const convertedNote = "Converted to contact"

// Convert turns a lead into a new contact owned by the caller. Contact,
// children, lead status, link and history are written in one transaction.
// A lead converts at most once.
func (s *Service) Convert(ctx context.Context, input ConvertInput) (ConvertResult, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return ConvertResult{}, err
	}
	if err := input.Validate(); err != nil {
		return ConvertResult{}, err
	}

	var (
		before domain.Lead
		result ConvertResult
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
		if before.IsConverted() {
			return fmt.Errorf("lead %s already converted: %w", before.ID, domain.ErrConflict)
		}

		now := time.Now().UTC()
		leadID := before.ID
		draft := input.Contact.ApplyTo(domain.Contact{
			ID:        uuid.New(),
			LeadID:    &leadID,
			OwnerID:   actor.UserID,
			CreatedAt: now,
		}, now)

		contact, createErr := s.contacts.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create contact: %w", createErr)
		}
		if err := s.contacts.ReplacePhones(txCtx, contact.ID, draft.Phones); err != nil {
			return fmt.Errorf("insert contact phones: %w", err)
		}
		if err := s.contacts.ReplaceEmails(txCtx, contact.ID, draft.Emails); err != nil {
			return fmt.Errorf("insert contact emails: %w", err)
		}
		contact.Phones = draft.Phones
		contact.Emails = draft.Emails

		converted, err := before.Convert(contact.ID, now)
		if err != nil {
			return err
		}
		updated, updateErr := s.leads.Update(txCtx, converted)
		if updateErr != nil {
			return fmt.Errorf("mark lead converted: %w", updateErr)
		}

		oldStatus := before.Status
		note := convertedNote
		if err := s.leads.AddStatusChange(txCtx, domain.LeadStatusChange{
			ID:        uuid.New(),
			LeadID:    updated.ID,
			OldStatus: &oldStatus,
			NewStatus: updated.Status,
			ChangedBy: actor.UserID,
			Notes:     &note,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("add status history: %w", err)
		}

		result = ConvertResult{Lead: updated, Contact: contact}
		return nil
	})
	if err != nil {
		return ConvertResult{}, err
	}

	s.audit.Log(ctx, record(domain.AuditLeadConvert, result.Lead.ID,
		map[string]any{"status": before.Status},
		map[string]any{
			"status":                  result.Lead.Status,
			"converted_to_contact_id": result.Contact.ID,
		},
	))

	s.log.InfoContext(ctx, "lead converted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("lead_id", result.Lead.ID.String()),
		slog.String("contact_id", result.Contact.ID.String()),
	)

	return result, nil
}
