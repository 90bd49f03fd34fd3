package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// GetContact returns a contact with its owner summary, phones and e-mails.
// The three lookups run concurrently. A missing owner profile leaves Owner nil.
func (s *Service) GetContact(ctx context.Context, id uuid.UUID) (domain.ContactDetail, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return domain.ContactDetail{}, err
	}

	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return domain.ContactDetail{}, fmt.Errorf("get contact: %w", err)
	}

	var (
		owner  *domain.OwnerSummary
		phones []domain.ContactPhone
		emails []domain.ContactEmail
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.profiles.GetByID(gctx, c.OwnerID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get owner: %w", err)
		}
		owner = &domain.OwnerSummary{ID: p.ID, FullName: p.FullName, Email: p.Email}
		return nil
	})

	g.Go(func() error {
		var err error
		phones, err = s.contacts.ListPhones(gctx, id)
		if err != nil {
			return fmt.Errorf("list phones: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		emails, err = s.contacts.ListEmails(gctx, id)
		if err != nil {
			return fmt.Errorf("list emails: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.ContactDetail{}, err
	}

	c.Phones = phones
	c.Emails = emails
	return domain.ContactDetail{Contact: c, Owner: owner}, nil
}

// ListContacts returns a filtered page of contacts, newest first, and the total.
func (s *Service) ListContacts(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, 0, err
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

	return s.contacts.List(ctx, f)
}

// Activities returns the contact's activity log, newest first.
func (s *Service) Activities(ctx context.Context, contactID uuid.UUID) ([]domain.Activity, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.activities.ListByEntity(ctx, domain.EntityTypeContact, contactID)
}

// AddActivity appends an activity entry to a contact the caller may modify.
func (s *Service) AddActivity(ctx context.Context, input AddActivityInput) (domain.Activity, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Activity{}, err
	}

	c, err := s.contacts.GetByID(ctx, input.ContactID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("get contact: %w", err)
	}
	if err := auth.RequireModify(actor, c.OwnerID); err != nil {
		return domain.Activity{}, err
	}

	a, err := s.activities.Create(ctx, domain.Activity{
		ID:          uuid.New(),
		EntityType:  domain.EntityTypeContact,
		EntityID:    c.ID,
		UserID:      actor.UserID,
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "contact activity added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("contact_id", c.ID.String()),
	)
	return a, nil
}
