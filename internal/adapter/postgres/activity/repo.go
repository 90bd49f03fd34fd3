// Package activity implements the append-only activity log repository for
// leads, contacts and deals.
package activity

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

var columns = []string{"id", "entity_type", "entity_id", "user_id", "activity_type", "description", "created_at"}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends an activity.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	query, args, err := postgres.Builder().
		Insert("activities").
		Columns(columns...).
		Values(a.ID, a.EntityType, a.EntityID, a.UserID, a.Type, a.Description, a.CreatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build insert activity: %w", err)
	}

	var row activityRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.ID)
	}
	return domain.Activity(row), nil
}

// ListByEntity returns the activities of one lead, contact or deal, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Activity, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("activities").
		Where(sq.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list activities")
	}

	activities := make([]domain.Activity, len(rows))
	for i, row := range rows {
		activities[i] = domain.Activity(row)
	}
	return activities, nil
}

// CountSince counts activities created at or after since.
func (r *Repo) CountSince(ctx context.Context, since time.Time) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("activities").
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count activities: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapListError(err, "count activities")
	}
	return n, nil
}

type activityRow struct {
	ID          uuid.UUID           `db:"id"`
	EntityType  domain.EntityType   `db:"entity_type"`
	EntityID    uuid.UUID           `db:"entity_id"`
	UserID      uuid.UUID           `db:"user_id"`
	Type        domain.ActivityType `db:"activity_type"`
	Description string              `db:"description"`
	CreatedAt   time.Time           `db:"created_at"`
}
