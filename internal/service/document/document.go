package document

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Upload stores the binary, then inserts its metadata row. If the insert
// fails the stored object is removed again.
func (s *Service) Upload(ctx context.Context, input UploadInput) (domain.Document, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Document{}, err
	}
	if err := input.Validate(s.storage.MaxUploadBytes); err != nil {
		return domain.Document{}, err
	}

	category := input.Category
	if category == "" {
		category = domain.DocumentCategoryOther
	}
	mimeType := strings.TrimSpace(input.MimeType)
	if mimeType == "" {
		mimeType = http.DetectContentType(input.Data)
	}
	name := strings.TrimSpace(input.Name)
	path := objectPath(actor.UserID, input.Link, name)

	if err := s.store.Upload(ctx, path, input.Data, mimeType); err != nil {
		return domain.Document{}, fmt.Errorf("upload object: %w", err)
	}

	now := time.Now().UTC()
	doc, err := s.documents.Create(ctx, domain.Document{
		ID:          uuid.New(),
		Name:        name,
		StoragePath: path,
		SizeBytes:   int64(len(input.Data)),
		MimeType:    mimeType,
		Category:    category,
		Link:        input.Link,
		UploadedBy:  actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if delErr := s.store.Delete(context.WithoutCancel(ctx), path); delErr != nil {
			s.log.WarnContext(ctx, "remove orphaned object",
				slog.String("path", path),
				slog.String("error", delErr.Error()),
			)
		}
		return domain.Document{}, fmt.Errorf("create document: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditDocumentUpload,
		EntityType: domain.EntityTypeDocument,
		EntityID:   &doc.ID,
		NewValues: map[string]any{
			"name":       doc.Name,
			"category":   doc.Category,
			"size_bytes": doc.SizeBytes,
			"path":       doc.StoragePath,
		},
	})

	s.log.InfoContext(ctx, "document uploaded",
		slog.String("user_id", actor.UserID.String()),
		slog.String("document_id", doc.ID.String()),
		slog.String("size", doc.SizeLabel()),
	)
	return doc, nil
}

// SignedURL returns a time-limited download URL for a document.
func (s *Service) SignedURL(ctx context.Context, id uuid.UUID) (string, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return "", err
	}
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get document: %w", err)
	}
	url, err := s.store.SignedURL(ctx, doc.StoragePath, s.storage.SignedURLTTL)
	if err != nil {
		return "", fmt.Errorf("sign document url: %w", err)
	}
	return url, nil
}

// Delete removes a document. Allowed for its uploader, managers and admins.
// A failure to remove the stored object is logged and does not stop the
// metadata delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}
	if err := auth.RequireModify(actor, doc.UploadedBy); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		s.log.WarnContext(ctx, "delete stored object",
			slog.String("document_id", doc.ID.String()),
			slog.String("path", doc.StoragePath),
			slog.String("error", err.Error()),
		)
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.audit.Log(ctx, domain.AuditRecord{
		Action:     domain.AuditDocumentDelete,
		EntityType: domain.EntityTypeDocument,
		EntityID:   &doc.ID,
		OldValues: map[string]any{
			"name": doc.Name,
			"path": doc.StoragePath,
		},
	})

	s.log.InfoContext(ctx, "document deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("document_id", doc.ID.String()),
	)
	return nil
}

// List returns documents attached to link, newest first.
func (s *Service) List(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Document, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, err
	}
	page.Limit = s.crm.ClampLimit(page.Limit)
	page.Offset = max(page.Offset, 0)
	return s.documents.ListByLink(ctx, link, page)
}
