// Package note implements immutable notes attached to leads, contacts and
// deals. Notes can be added and listed; nothing edits or removes them.
package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const maxContentLength = 10000

type noteRepo interface {
	Create(ctx context.Context, n domain.Note) (domain.Note, error)
	ListByLink(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Note, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// Service manages notes.
type Service struct {
	log   *slog.Logger
	notes noteRepo
	audit auditLogger
	cfg   config.CRMConfig
}

// NewService creates a new note service.
func NewService(logger *slog.Logger, notes noteRepo, audit auditLogger, cfg config.CRMConfig) *Service {
	return &Service{
		log:   logger.With("service", "note"),
		notes: notes,
		audit: audit,
		cfg:   cfg,
	}
}

// AddNoteInput holds a new note.
type AddNoteInput struct {
	Content string
	Link    domain.Link
}

// Validate checks all fields and collects all errors.
func (i AddNoteInput) Validate() error {
	content := strings.TrimSpace(i.Content)
	switch {
	case content == "":
		return domain.NewValidationError("content", "required")
	case len(content) > maxContentLength:
		return domain.NewValidationError("content", "max 10000 characters")
	}
	return nil
}

// AddNote appends a note written by the caller.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (domain.Note, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Note{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Note{}, err
	}

	n, err := s.notes.Create(ctx, domain.Note{
		ID:        uuid.New(),
		Content:   strings.TrimSpace(input.Content),
		Link:      input.Link,
		CreatedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditNoteCreate,
		EntityType: domain.EntityTypeNote,
		EntityID:   &n.ID,
		NewValues: map[string]any{
			"lead_id":    n.Link.LeadID,
			"contact_id": n.Link.ContactID,
			"deal_id":    n.Link.DealID,
		},
	})

	s.log.InfoContext(ctx, "note added",
		slog.String("user_id", actor.UserID.String()),
		slog.String("note_id", n.ID.String()),
	)
	return n, nil
}

// ListNotes returns notes attached to link, newest first.
func (s *Service) ListNotes(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Note, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	page.Limit = s.cfg.ClampLimit(page.Limit)
	page.Offset = max(page.Offset, 0)
	return s.notes.ListByLink(ctx, link, page)
}
