// Package deal implements the Deal repository using PostgreSQL.
// It covers deals and their append-only stage history.
package deal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var dealColumns = []string{
	"id", "name", "lead_id", "contact_id", "owner_id", "stage", "estimated_value",
	"confirmed_value", "expected_close_date", "actual_close_date", "notes", "created_at", "updated_at",
}

var historyColumns = []string{
	"id", "deal_id", "old_stage", "new_stage", "changed_by", "notes", "created_at",
}

// Repo provides deal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a deal by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a deal and locks its row for the current transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (domain.Deal, error) {
	b := postgres.Builder().Select(dealColumns...).From("deals").Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return domain.Deal{}, fmt.Errorf("build get deal: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Deal{}, postgres.MapError(err, "deal", id)
	}
	return row.toDomain(), nil
}

// List returns deals matching the filter, newest first, and the total count.
// A zero Limit returns every matching deal (pipeline view).
func (r *Repo) List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, int, error) {
	where := sq.And{}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.ILike("name", *f.Search))
	}
	if f.Stage != nil {
		where = append(where, sq.Eq{"stage": *f.Stage})
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	if f.LeadID != nil {
		where = append(where, sq.Eq{"lead_id": *f.LeadID})
	}
	if f.ContactID != nil {
		where = append(where, sq.Eq{"contact_id": *f.ContactID})
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("deals").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count deals: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count deals")
	}

	b := postgres.Builder().Select(dealColumns...).From("deals").Where(where).OrderBy("created_at DESC", "id")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list deals: %w", err)
	}

	var rows []dealRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapListError(err, "list deals")
	}

	deals := make([]domain.Deal, len(rows))
	for i, row := range rows {
		deals[i] = row.toDomain()
	}
	return deals, total, nil
}

// ListStageHistory returns a deal's stage changes, newest first.
func (r *Repo) ListStageHistory(ctx context.Context, dealID uuid.UUID) ([]domain.DealStageChange, error) {
	query, args, err := postgres.Builder().
		Select(historyColumns...).
		From("deal_stage_history").
		Where(sq.Eq{"deal_id": dealID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deal history: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list deal_stage_history")
	}

	changes := make([]domain.DealStageChange, len(rows))
	for i, row := range rows {
		changes[i] = domain.DealStageChange(row)
	}
	return changes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new deal.
func (r *Repo) Create(ctx context.Context, d domain.Deal) (domain.Deal, error) {
	query, args, err := postgres.Builder().
		Insert("deals").
		Columns(dealColumns...).
		Values(d.ID, d.Name, d.LeadID, d.ContactID, d.OwnerID, d.Stage, d.EstimatedValue,
			d.ConfirmedValue, d.ExpectedCloseDate, d.ActualCloseDate, d.Notes, d.CreatedAt, d.UpdatedAt).
		Suffix(postgres.Returning(dealColumns...)).
		ToSql()
	if err != nil {
		return domain.Deal{}, fmt.Errorf("build insert deal: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Deal{}, postgres.MapError(err, "deal", d.ID)
	}
	return row.toDomain(), nil
}

// Update writes every mutable column of d and returns the stored deal.
func (r *Repo) Update(ctx context.Context, d domain.Deal) (domain.Deal, error) {
	query, args, err := postgres.Builder().
		Update("deals").
		SetMap(map[string]any{
			"name":                d.Name,
			"lead_id":             d.LeadID,
			"contact_id":          d.ContactID,
			"owner_id":            d.OwnerID,
			"stage":               d.Stage,
			"estimated_value":     d.EstimatedValue,
			"confirmed_value":     d.ConfirmedValue,
			"expected_close_date": d.ExpectedCloseDate,
			"actual_close_date":   d.ActualCloseDate,
			"notes":               d.Notes,
			"updated_at":          d.UpdatedAt,
		}).
		Where(sq.Eq{"id": d.ID}).
		Suffix(postgres.Returning(dealColumns...)).
		ToSql()
	if err != nil {
		return domain.Deal{}, fmt.Errorf("build update deal: %w", err)
	}

	var row dealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Deal{}, postgres.MapError(err, "deal", d.ID)
	}
	return row.toDomain(), nil
}

// AddStageChange appends an entry to a deal's stage history.
func (r *Repo) AddStageChange(ctx context.Context, c domain.DealStageChange) error {
	query, args, err := postgres.Builder().
		Insert("deal_stage_history").
		Columns(historyColumns...).
		Values(c.ID, c.DealID, c.OldStage, c.NewStage, c.ChangedBy, c.Notes, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert deal history: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "deal_stage_history", c.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type dealRow struct {
	ID                uuid.UUID        `db:"id"`
	Name              string           `db:"name"`
	LeadID            *uuid.UUID       `db:"lead_id"`
	ContactID         *uuid.UUID       `db:"contact_id"`
	OwnerID           uuid.UUID        `db:"owner_id"`
	Stage             domain.DealStage `db:"stage"`
	EstimatedValue    *decimal.Decimal `db:"estimated_value"`
	ConfirmedValue    *decimal.Decimal `db:"confirmed_value"`
	ExpectedCloseDate *time.Time       `db:"expected_close_date"`
	ActualCloseDate   *time.Time       `db:"actual_close_date"`
	Notes             *string          `db:"notes"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

func (r dealRow) toDomain() domain.Deal {
	return domain.Deal{
		ID:                r.ID,
		Name:              r.Name,
		LeadID:            r.LeadID,
		ContactID:         r.ContactID,
		OwnerID:           r.OwnerID,
		Stage:             r.Stage,
		EstimatedValue:    r.EstimatedValue,
		ConfirmedValue:    r.ConfirmedValue,
		ExpectedCloseDate: r.ExpectedCloseDate,
		ActualCloseDate:   r.ActualCloseDate,
		Notes:             r.Notes,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

type historyRow struct {
	ID        uuid.UUID         `db:"id"`
	DealID    uuid.UUID         `db:"deal_id"`
	OldStage  *domain.DealStage `db:"old_stage"`
	NewStage  domain.DealStage  `db:"new_stage"`
	ChangedBy uuid.UUID         `db:"changed_by"`
	Notes     *string           `db:"notes"`
	CreatedAt time.Time         `db:"created_at"`
}
