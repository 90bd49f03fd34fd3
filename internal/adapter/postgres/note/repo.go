// Package note implements the Note repository using PostgreSQL.
// Notes are immutable: there is no update or delete.
package note

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var columns = []string{"id", "content", "lead_id", "contact_id", "deal_id", "created_by", "created_at"}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, n domain.Note) (domain.Note, error) {
	query, args, err := postgres.Builder().
		Insert("notes").
		Columns(columns...).
		Values(n.ID, n.Content, n.Link.LeadID, n.Link.ContactID, n.Link.DealID, n.CreatedBy, n.CreatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.Note{}, fmt.Errorf("build insert note: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Note{}, postgres.MapError(err, "note", n.ID)
	}
	return row.toDomain(), nil
}

// ListByLink returns notes attached to link, newest first.
func (r *Repo) ListByLink(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Note, error) {
	b := postgres.Builder().Select(columns...).From("notes").Where(postgres.LinkEq(link)).OrderBy("created_at DESC")
	query, args, err := postgres.Paginate(b, page.Limit, page.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list notes")
	}

	notes := make([]domain.Note, len(rows))
	for i, row := range rows {
		notes[i] = row.toDomain()
	}
	return notes, nil
}

type noteRow struct {
	ID        uuid.UUID  `db:"id"`
	Content   string     `db:"content"`
	LeadID    *uuid.UUID `db:"lead_id"`
	ContactID *uuid.UUID `db:"contact_id"`
	DealID    *uuid.UUID `db:"deal_id"`
	CreatedBy uuid.UUID  `db:"created_by"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r noteRow) toDomain() domain.Note {
	return domain.Note{
		ID:        r.ID,
		Content:   r.Content,
		Link:      domain.Link{LeadID: r.LeadID, ContactID: r.ContactID, DealID: r.DealID},
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
	}
}
