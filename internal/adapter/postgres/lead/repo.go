// Package lead implements the Lead repository using PostgreSQL.
// It covers leads and their append-only status history.
package lead

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

var leadColumns = []string{
	"id", "name", "phone", "email", "source", "status", "owner_id",
	"inquiry_date", "notes", "converted_to_contact_id", "created_at", "updated_at",
}

var historyColumns = []string{
	"id", "lead_id", "old_status", "new_status", "changed_by", "notes", "created_at",
}

// Repo provides lead persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lead repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a lead by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a lead and locks its row until the surrounding
// transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (domain.Lead, error) {
	b := postgres.Builder().Select(leadColumns...).From("leads").Where(sq.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return domain.Lead{}, fmt.Errorf("build get lead: %w", err)
	}

	var row leadRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Lead{}, postgres.MapError(err, "lead", id)
	}
	return row.toDomain(), nil
}

// List returns leads matching the filter, newest first, and the total count
// of matching leads ignoring pagination.
func (r *Repo) List(ctx context.Context, f domain.LeadFilter) ([]domain.Lead, int, error) {
	where := leadConditions(f)
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("leads").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count leads: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count leads")
	}

	b := postgres.Builder().Select(leadColumns...).From("leads").Where(where).OrderBy("created_at DESC", "id")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list leads: %w", err)
	}

	var rows []leadRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapListError(err, "list leads")
	}

	leads := make([]domain.Lead, len(rows))
	for i, row := range rows {
		leads[i] = row.toDomain()
	}
	return leads, total, nil
}

func leadConditions(f domain.LeadFilter) sq.And {
	where := sq.And{}
	if f.Search != nil && *f.Search != "" {
		where = append(where, postgres.AnyILike(*f.Search, "name", "email", "phone"))
	}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": *f.Status})
	}
	if f.Source != nil {
		where = append(where, sq.Eq{"source": *f.Source})
	}
	if f.OwnerID != nil {
		where = append(where, sq.Eq{"owner_id": *f.OwnerID})
	}
	return where
}

// ListStatusHistory returns a lead's status changes, newest first.
func (r *Repo) ListStatusHistory(ctx context.Context, leadID uuid.UUID) ([]domain.LeadStatusChange, error) {
	query, args, err := postgres.Builder().
		Select(historyColumns...).
		From("lead_status_history").
		Where(sq.Eq{"lead_id": leadID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lead history: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list lead_status_history")
	}

	changes := make([]domain.LeadStatusChange, len(rows))
	for i, row := range rows {
		changes[i] = row.toDomain()
	}
	return changes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new lead.
func (r *Repo) Create(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	query, args, err := postgres.Builder().
		Insert("leads").
		Columns(leadColumns...).
		Values(l.ID, l.Name, l.Phone, l.Email, l.Source, l.Status, l.OwnerID,
			l.InquiryDate, l.Notes, l.ConvertedToContactID, l.CreatedAt, l.UpdatedAt).
		Suffix(postgres.Returning(leadColumns...)).
		ToSql()
	if err != nil {
		return domain.Lead{}, fmt.Errorf("build insert lead: %w", err)
	}

	var row leadRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Lead{}, postgres.MapError(err, "lead", l.ID)
	}
	return row.toDomain(), nil
}

// Update writes every mutable column of l and returns the stored lead.
func (r *Repo) Update(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	query, args, err := postgres.Builder().
		Update("leads").
		SetMap(map[string]any{
			"name":                    l.Name,
			"phone":                   l.Phone,
			"email":                   l.Email,
			"source":                  l.Source,
			"status":                  l.Status,
			"owner_id":                l.OwnerID,
			"inquiry_date":            l.InquiryDate,
			"notes":                   l.Notes,
			"converted_to_contact_id": l.ConvertedToContactID,
			"updated_at":              l.UpdatedAt,
		}).
		Where(sq.Eq{"id": l.ID}).
		Suffix(postgres.Returning(leadColumns...)).
		ToSql()
	if err != nil {
		return domain.Lead{}, fmt.Errorf("build update lead: %w", err)
	}

	var row leadRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Lead{}, postgres.MapError(err, "lead", l.ID)
	}
	return row.toDomain(), nil
}

// AddStatusChange appends an entry to a lead's status history.
func (r *Repo) AddStatusChange(ctx context.Context, c domain.LeadStatusChange) error {
	query, args, err := postgres.Builder().
		Insert("lead_status_history").
		Columns(historyColumns...).
		Values(c.ID, c.LeadID, c.OldStatus, c.NewStatus, c.ChangedBy, c.Notes, c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert lead history: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "lead_status_history", c.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type leadRow struct {
	ID                   uuid.UUID         `db:"id"`
	Name                 string            `db:"name"`
	Phone                *string           `db:"phone"`
	Email                *string           `db:"email"`
	Source               domain.LeadSource `db:"source"`
	Status               domain.LeadStatus `db:"status"`
	OwnerID              uuid.UUID         `db:"owner_id"`
	InquiryDate          time.Time         `db:"inquiry_date"`
	Notes                *string           `db:"notes"`
	ConvertedToContactID *uuid.UUID        `db:"converted_to_contact_id"`
	CreatedAt            time.Time         `db:"created_at"`
	UpdatedAt            time.Time         `db:"updated_at"`
}

func (r leadRow) toDomain() domain.Lead {
	return domain.Lead{
		ID:                   r.ID,
		Name:                 r.Name,
		Phone:                r.Phone,
		Email:                r.Email,
		Source:               r.Source,
		Status:               r.Status,
		OwnerID:              r.OwnerID,
		InquiryDate:          r.InquiryDate,
		Notes:                r.Notes,
		ConvertedToContactID: r.ConvertedToContactID,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

type historyRow struct {
	ID        uuid.UUID          `db:"id"`
	LeadID    uuid.UUID          `db:"lead_id"`
	OldStatus *domain.LeadStatus `db:"old_status"`
	NewStatus domain.LeadStatus  `db:"new_status"`
	ChangedBy uuid.UUID          `db:"changed_by"`
	Notes     *string            `db:"notes"`
	CreatedAt time.Time          `db:"created_at"`
}

func (r historyRow) toDomain() domain.LeadStatusChange {
	return domain.LeadStatusChange{
		ID:        r.ID,
		LeadID:    r.LeadID,
		OldStatus: r.OldStatus,
		NewStatus: r.NewStatus,
		ChangedBy: r.ChangedBy,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}
