// Package user implements the profile, role and credential repository using
// PostgreSQL.
package user

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

var profileColumns = []string{
	"p.id", "p.email", "p.full_name", "p.avatar_url", "p.status",
	"COALESCE(r.role, 'user') AS role", "p.created_at", "p.updated_at",
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func selectProfiles() sq.SelectBuilder {
	return postgres.Builder().
		Select(profileColumns...).
		From("profiles p").
		LeftJoin("user_roles r ON r.user_id = p.id")
}

// ---------------------------------------------------------------------------
// Profile operations
// ---------------------------------------------------------------------------

// GetByID returns a profile with its role.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	query, args, err := selectProfiles().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build get profile: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Profile{}, postgres.MapError(err, "profile", id)
	}
	return domain.Profile(row), nil
}

// GetByEmail returns a profile by case-insensitive e-mail.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	query, args, err := selectProfiles().Where(sq.Expr("lower(p.email) = lower(?)", email)).ToSql()
	if err != nil {
		return domain.Profile{}, fmt.Errorf("build get profile by email: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Profile{}, postgres.MapError(err, "profile", uuid.Nil)
	}
	return domain.Profile(row), nil
}

// GetSummaries returns owner summaries for ids. Missing ids are omitted.
func (r *Repo) GetSummaries(ctx context.Context, ids []uuid.UUID) ([]domain.OwnerSummary, error) {
	if len(ids) == 0 {
		return []domain.OwnerSummary{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "full_name", "email").
		From("profiles").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get profile summaries: %w", err)
	}

	var rows []summaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "get profile summaries")
	}

	out := make([]domain.OwnerSummary, len(rows))
	for i, row := range rows {
		out[i] = domain.OwnerSummary(row)
	}
	return out, nil
}

// List returns profiles ordered by creation, newest first, and the total count.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.Profile, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM profiles").Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count profiles")
	}

	query, args, err := postgres.Paginate(selectProfiles().OrderBy("p.created_at DESC"), page.Limit, page.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list profiles: %w", err)
	}

	var rows []profileRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapListError(err, "list profiles")
	}

	profiles := make([]domain.Profile, len(rows))
	for i, row := range rows {
		profiles[i] = domain.Profile(row)
	}
	return profiles, total, nil
}

// Create inserts a profile and its role assignment. Callers run it inside a
// transaction together with SetCredential.
func (r *Repo) Create(ctx context.Context, p domain.Profile) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Insert("profiles").
		Columns("id", "email", "full_name", "avatar_url", "status", "created_at", "updated_at").
		Values(p.ID, p.Email, p.FullName, p.AvatarURL, p.Status, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert profile: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "profile", p.ID)
	}

	return r.SetRole(ctx, p.ID, p.Role)
}

// UpdateProfile writes the self-editable profile fields.
func (r *Repo) UpdateProfile(ctx context.Context, p domain.Profile) error {
	query, args, err := postgres.Builder().
		Update("profiles").
		Set("full_name", p.FullName).
		Set("avatar_url", p.AvatarURL).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update profile: %w", err)
	}
	return r.execOne(ctx, query, args, "profile", p.ID)
}

// SetStatus changes a profile's account status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProfileStatus, now time.Time) error {
	query, args, err := postgres.Builder().
		Update("profiles").
		Set("status", status).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update profile status: %w", err)
	}
	return r.execOne(ctx, query, args, "profile", id)
}

// SetRole upserts a user's global role.
func (r *Repo) SetRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	query, args, err := postgres.Builder().
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, role).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET role = EXCLUDED.role").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert user_role: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

func (r *Repo) execOne(ctx context.Context, query string, args []any, entity string, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

// SetCredential stores or replaces a password hash.
func (r *Repo) SetCredential(ctx context.Context, c domain.Credential) error {
	query, args, err := postgres.Builder().
		Insert("credentials").
		Columns("user_id", "password_hash", "created_at").
		Values(c.UserID, c.PasswordHash, c.CreatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET password_hash = EXCLUDED.password_hash").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert credential: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "credential", c.UserID)
	}
	return nil
}

// GetCredential returns the password hash of a user.
func (r *Repo) GetCredential(ctx context.Context, userID uuid.UUID) (domain.Credential, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "password_hash", "created_at").
		From("credentials").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Credential{}, fmt.Errorf("build get credential: %w", err)
	}

	var row credentialRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Credential{}, postgres.MapError(err, "credential", userID)
	}
	return domain.Credential(row), nil
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type profileRow struct {
	ID        uuid.UUID            `db:"id"`
	Email     string               `db:"email"`
	FullName  *string              `db:"full_name"`
	AvatarURL *string              `db:"avatar_url"`
	Status    domain.ProfileStatus `db:"status"`
	Role      domain.Role          `db:"role"`
	CreatedAt time.Time            `db:"created_at"`
	UpdatedAt time.Time            `db:"updated_at"`
}

type summaryRow struct {
	ID       uuid.UUID `db:"id"`
	FullName *string   `db:"full_name"`
	Email    string    `db:"email"`
}

type credentialRow struct {
	UserID       uuid.UUID `db:"user_id"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
