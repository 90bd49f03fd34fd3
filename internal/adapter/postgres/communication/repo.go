// Package communication implements the Communication log repository using
// PostgreSQL.
package communication

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var columns = []string{
	"id", "comm_type", "direction", "subject", "content", "duration_minutes", "scheduled_at",
	"lead_id", "contact_id", "deal_id", "created_by", "created_at",
}

// Repo provides communication persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new communication repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a communication.
func (r *Repo) Create(ctx context.Context, c domain.Communication) (domain.Communication, error) {
	query, args, err := postgres.Builder().
		Insert("communications").
		Columns(columns...).
		Values(c.ID, c.Type, c.Direction, c.Subject, c.Content, c.DurationMinutes, c.ScheduledAt,
			c.Link.LeadID, c.Link.ContactID, c.Link.DealID, c.CreatedBy, c.CreatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.Communication{}, fmt.Errorf("build insert communication: %w", err)
	}

	var row commRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Communication{}, postgres.MapError(err, "communication", c.ID)
	}
	return row.toDomain(), nil
}

// ListByLink returns communications attached to link, newest first.
func (r *Repo) ListByLink(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Communication, error) {
	b := postgres.Builder().Select(columns...).From("communications").Where(postgres.LinkEq(link)).OrderBy("created_at DESC")
	query, args, err := postgres.Paginate(b, page.Limit, page.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list communications: %w", err)
	}

	var rows []commRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list communications")
	}

	out := make([]domain.Communication, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type commRow struct {
	ID              uuid.UUID                     `db:"id"`
	Type            domain.CommunicationType      `db:"comm_type"`
	Direction       domain.CommunicationDirection `db:"direction"`
	Subject         *string                       `db:"subject"`
	Content         *string                       `db:"content"`
	DurationMinutes *int                          `db:"duration_minutes"`
	ScheduledAt     *time.Time                    `db:"scheduled_at"`
	LeadID          *uuid.UUID                    `db:"lead_id"`
	ContactID       *uuid.UUID                    `db:"contact_id"`
	DealID          *uuid.UUID                    `db:"deal_id"`
	CreatedBy       uuid.UUID                     `db:"created_by"`
	CreatedAt       time.Time                     `db:"created_at"`
}

func (r commRow) toDomain() domain.Communication {
	return domain.Communication{
		ID:              r.ID,
		Type:            r.Type,
		Direction:       r.Direction,
		Subject:         r.Subject,
		Content:         r.Content,
		DurationMinutes: r.DurationMinutes,
		ScheduledAt:     r.ScheduledAt,
		Link:            domain.Link{LeadID: r.LeadID, ContactID: r.ContactID, DealID: r.DealID},
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
	}
}
