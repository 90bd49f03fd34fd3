// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

var insertColumns = []string{
	"id", "user_id", "action", "entity_type", "entity_id",
	"old_values", "new_values", "ip_address", "user_agent", "created_at",
}

var selectColumns = []string{
	"a.id", "a.user_id", "a.action", "a.entity_type", "a.entity_id",
	"a.old_values", "a.new_values", "a.ip_address", "a.user_agent", "a.created_at",
	"p.email AS user_email",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) error {
	oldJSON, err := marshalValues(record.OldValues)
	if err != nil {
		return fmt.Errorf("audit_record marshal old_values: %w", err)
	}
	newJSON, err := marshalValues(record.NewValues)
	if err != nil {
		return fmt.Errorf("audit_record marshal new_values: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("audit_logs").
		Columns(insertColumns...).
		Values(record.ID, record.UserID, record.Action, record.EntityType, record.EntityID,
			oldJSON, newJSON, record.IPAddress, record.UserAgent, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit_record: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit entries matching the filter, newest first, each
// enriched with the actor's e-mail when the actor still exists.
func (r *Repo) List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error) {
	where := sq.And{}
	if f.Action != nil {
		where = append(where, sq.Eq{"a.action": *f.Action})
	}
	if f.EntityType != nil {
		where = append(where, sq.Eq{"a.entity_type": *f.EntityType})
	}
	if f.UserID != nil {
		where = append(where, sq.Eq{"a.user_id": *f.UserID})
	}

	b := postgres.Builder().
		Select(selectColumns...).
		From("audit_logs a").
		LeftJoin("profiles p ON p.id = a.user_id").
		Where(where).
		OrderBy("a.created_at DESC")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list audit_records")
	}

	entries := make([]domain.AuditEntry, len(rows))
	for i, row := range rows {
		entry, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type auditRow struct {
	ID         uuid.UUID          `db:"id"`
	UserID     *uuid.UUID         `db:"user_id"`
	Action     domain.AuditAction `db:"action"`
	EntityType domain.EntityType  `db:"entity_type"`
	EntityID   *uuid.UUID         `db:"entity_id"`
	OldValues  []byte             `db:"old_values"`
	NewValues  []byte             `db:"new_values"`
	IPAddress  *string            `db:"ip_address"`
	UserAgent  *string            `db:"user_agent"`
	CreatedAt  time.Time          `db:"created_at"`
	UserEmail  *string            `db:"user_email"`
}

func (r auditRow) toDomain() (domain.AuditEntry, error) {
	oldValues, err := unmarshalValues(r.OldValues)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_record %s unmarshal old_values: %w", r.ID, err)
	}
	newValues, err := unmarshalValues(r.NewValues)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit_record %s unmarshal new_values: %w", r.ID, err)
	}

	return domain.AuditEntry{
		AuditRecord: domain.AuditRecord{
			ID:         r.ID,
			UserID:     r.UserID,
			Action:     r.Action,
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			OldValues:  oldValues,
			NewValues:  newValues,
			IPAddress:  r.IPAddress,
			UserAgent:  r.UserAgent,
			CreatedAt:  r.CreatedAt,
		},
		UserEmail: r.UserEmail,
	}, nil
}

// marshalValues encodes a values map as JSONB (nil map -> NULL).
func marshalValues(v map[string]any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func unmarshalValues(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	values := make(map[string]any)
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}
