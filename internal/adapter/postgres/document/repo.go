// Package document implements the Document metadata repository using
// PostgreSQL. Binary content lives in the object store.
package document

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var columns = []string{
	"id", "name", "storage_path", "size_bytes", "mime_type", "category",
	"lead_id", "contact_id", "deal_id", "uploaded_by", "created_at", "updated_at",
}

// Repo provides document persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new document repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns document metadata by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	query, args, err := postgres.Builder().Select(columns...).From("documents").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Document{}, fmt.Errorf("build get document: %w", err)
	}

	var row documentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Document{}, postgres.MapError(err, "document", id)
	}
	return row.toDomain(), nil
}

// ListByLink returns documents attached to link, newest first.
func (r *Repo) ListByLink(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Document, error) {
	b := postgres.Builder().Select(columns...).From("documents").Where(postgres.LinkEq(link)).OrderBy("created_at DESC")
	query, args, err := postgres.Paginate(b, page.Limit, page.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list documents: %w", err)
	}

	var rows []documentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list documents")
	}

	docs := make([]domain.Document, len(rows))
	for i, row := range rows {
		docs[i] = row.toDomain()
	}
	return docs, nil
}

// Create inserts document metadata.
func (r *Repo) Create(ctx context.Context, d domain.Document) (domain.Document, error) {
	query, args, err := postgres.Builder().
		Insert("documents").
		Columns(columns...).
		Values(d.ID, d.Name, d.StoragePath, d.SizeBytes, d.MimeType, d.Category,
			d.Link.LeadID, d.Link.ContactID, d.Link.DealID, d.UploadedBy, d.CreatedAt, d.UpdatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.Document{}, fmt.Errorf("build insert document: %w", err)
	}

	var row documentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Document{}, postgres.MapError(err, "document", d.ID)
	}
	return row.toDomain(), nil
}

// Delete removes document metadata.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete("documents").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete document: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "document", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type documentRow struct {
	ID          uuid.UUID               `db:"id"`
	Name        string                  `db:"name"`
	StoragePath string                  `db:"storage_path"`
	SizeBytes   int64                   `db:"size_bytes"`
	MimeType    string                  `db:"mime_type"`
	Category    domain.DocumentCategory `db:"category"`
	LeadID      *uuid.UUID              `db:"lead_id"`
	ContactID   *uuid.UUID              `db:"contact_id"`
	DealID      *uuid.UUID              `db:"deal_id"`
	UploadedBy  uuid.UUID               `db:"uploaded_by"`
	CreatedAt   time.Time               `db:"created_at"`
	UpdatedAt   time.Time               `db:"updated_at"`
}

func (r documentRow) toDomain() domain.Document {
	return domain.Document{
		ID:          r.ID,
		Name:        r.Name,
		StoragePath: r.StoragePath,
		SizeBytes:   r.SizeBytes,
		MimeType:    r.MimeType,
		Category:    r.Category,
		Link:        domain.Link{LeadID: r.LeadID, ContactID: r.ContactID, DealID: r.DealID},
		UploadedBy:  r.UploadedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
