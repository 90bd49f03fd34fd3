package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/auditlog"
)

// CreateContact inserts a contact and its phones and e-mails in one
// transaction.
func (s *Service) CreateContact(ctx context.Context, input CreateContactInput) (domain.Contact, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Contact{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Contact{}, err
	}

	ownerID := actor.UserID
	if input.OwnerID != nil && *input.OwnerID != actor.UserID {
		if !auth.CanReassign(actor) {
			return domain.Contact{}, domain.ErrForbidden
		}
		if _, err := s.profiles.GetByID(ctx, *input.OwnerID); err != nil {
			return domain.Contact{}, fmt.Errorf("get owner: %w", err)
		}
		ownerID = *input.OwnerID
	}

	now := time.Now().UTC()
	draft := input.Contact.ApplyTo(domain.Contact{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: now,
	}, now)

	var created domain.Contact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.contacts.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create contact: %w", createErr)
		}
		return s.replaceChildren(txCtx, created.ID, draft)
	})
	if err != nil {
		return domain.Contact{}, err
	}
	created.Phones = draft.Phones
	created.Emails = draft.Emails

	s.audit.Log(ctx, record(domain.AuditContactCreate, created.ID, nil, snapshot(created)))

	s.log.InfoContext(ctx, "contact created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("contact_id", created.ID.String()),
	)

	return created, nil
}

// UpdateContact replaces the contact's fields and, wholesale, its phones and
// e-mails in one transaction.
func (s *Service) UpdateContact(ctx context.Context, input UpdateContactInput) (domain.Contact, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Contact{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Contact{}, err
	}

	var before, updated domain.Contact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var getErr error
		before, getErr = s.loadWithChildren(txCtx, input.ContactID)
		if getErr != nil {
			return getErr
		}
		if err := auth.RequireModify(actor, before.OwnerID); err != nil {
			return err
		}

		next := input.Contact.ApplyTo(before, time.Now().UTC())

		var updateErr error
		updated, updateErr = s.contacts.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update contact: %w", updateErr)
		}
		if err := s.replaceChildren(txCtx, updated.ID, next); err != nil {
			return err
		}
		updated.Phones = next.Phones
		updated.Emails = next.Emails
		return nil
	})
	if err != nil {
		return domain.Contact{}, err
	}

	if oldValues, newValues := auditlog.Diff(snapshot(before), snapshot(updated)); len(newValues) > 0 {
		s.audit.Log(ctx, record(domain.AuditContactUpdate, updated.ID, oldValues, newValues))
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("contact_id", updated.ID.String()),
	)

	return updated, nil
}

// DeleteContact removes a contact; its phones and e-mails cascade. A contact
// that a converted lead points to cannot be deleted.
func (s *Service) DeleteContact(ctx context.Context, id uuid.UUID) error {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get contact: %w", err)
	}
	if err := auth.RequireModify(actor, c.OwnerID); err != nil {
		return err
	}

	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.audit.Log(ctx, record(domain.AuditContactDelete, id, snapshot(c), nil))

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("contact_id", id.String()),
	)
	return nil
}

func (s *Service) replaceChildren(ctx context.Context, contactID uuid.UUID, c domain.Contact) error {
	if err := s.contacts.ReplacePhones(ctx, contactID, c.Phones); err != nil {
		return fmt.Errorf("replace contact phones: %w", err)
	}
	if err := s.contacts.ReplaceEmails(ctx, contactID, c.Emails); err != nil {
		return fmt.Errorf("replace contact emails: %w", err)
	}
	return nil
}

func (s *Service) loadWithChildren(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	if c.Phones, err = s.contacts.ListPhones(ctx, id); err != nil {
		return domain.Contact{}, fmt.Errorf("list contact phones: %w", err)
	}
	if c.Emails, err = s.contacts.ListEmails(ctx, id); err != nil {
		return domain.Contact{}, fmt.Errorf("list contact emails: %w", err)
	}
	return c, nil
}
