// Package document implements file attachments: the binary goes to the object
// store, the metadata row to the database.
package document

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type documentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error)
	ListByLink(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Document, error)
	Create(ctx context.Context, d domain.Document) (domain.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type objectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, path string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord)
}

// Service manages documents.
type Service struct {
	log       *slog.Logger
	documents documentRepo
	store     objectStore
	audit     auditLogger
	storage   config.StorageConfig
	crm       config.CRMConfig
}

// NewService creates a new document service.
func NewService(
	logger *slog.Logger,
	documents documentRepo,
	store objectStore,
	audit auditLogger,
	storage config.StorageConfig,
	crm config.CRMConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "document"),
		documents: documents,
		store:     store,
		audit:     audit,
		storage:   storage,
		crm:       crm,
	}
}
