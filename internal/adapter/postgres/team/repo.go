// Package team implements the Team and team membership repository using
// PostgreSQL.
package team

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

var teamColumns = []string{"id", "name", "description", "owner_id", "created_at", "updated_at"}

var memberColumns = []string{"id", "team_id", "user_id", "role", "joined_at"}

// Repo provides team persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new team repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Teams
// ---------------------------------------------------------------------------

// GetByID returns a team by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Team, error) {
	query, args, err := postgres.Builder().Select(teamColumns...).From("teams").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Team{}, fmt.Errorf("build get team: %w", err)
	}

	var row teamRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Team{}, postgres.MapError(err, "team", id)
	}
	return domain.Team(row), nil
}

// List returns all teams ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Team, error) {
	query, args, err := postgres.Builder().Select(teamColumns...).From("teams").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list teams: %w", err)
	}

	var rows []teamRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list teams")
	}

	teams := make([]domain.Team, len(rows))
	for i, row := range rows {
		teams[i] = domain.Team(row)
	}
	return teams, nil
}

// Create inserts a team.
func (r *Repo) Create(ctx context.Context, t domain.Team) (domain.Team, error) {
	query, args, err := postgres.Builder().
		Insert("teams").
		Columns(teamColumns...).
		Values(t.ID, t.Name, t.Description, t.OwnerID, t.CreatedAt, t.UpdatedAt).
		Suffix(postgres.Returning(teamColumns...)).
		ToSql()
	if err != nil {
		return domain.Team{}, fmt.Errorf("build insert team: %w", err)
	}

	var row teamRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Team{}, postgres.MapError(err, "team", t.ID)
	}
	return domain.Team(row), nil
}

// Update writes the team's name and description.
func (r *Repo) Update(ctx context.Context, t domain.Team) (domain.Team, error) {
	query, args, err := postgres.Builder().
		Update("teams").
		Set("name", t.Name).
		Set("description", t.Description).
		Set("updated_at", t.UpdatedAt).
		Where(sq.Eq{"id": t.ID}).
		Suffix(postgres.Returning(teamColumns...)).
		ToSql()
	if err != nil {
		return domain.Team{}, fmt.Errorf("build update team: %w", err)
	}

	var row teamRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Team{}, postgres.MapError(err, "team", t.ID)
	}
	return domain.Team(row), nil
}

// Delete removes a team; memberships cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete("teams").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete team: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "team", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("team %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Members
// ---------------------------------------------------------------------------

// ListMembers returns a team's members with their profile summaries.
func (r *Repo) ListMembers(ctx context.Context, teamID uuid.UUID) ([]domain.TeamMemberWithProfile, error) {
	query, args, err := postgres.Builder().
		Select("m.id", "m.team_id", "m.user_id", "m.role", "m.joined_at", "p.full_name", "p.email").
		From("team_members m").
		Join("profiles p ON p.id = m.user_id").
		Where(sq.Eq{"m.team_id": teamID}).
		OrderBy("m.joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list team members: %w", err)
	}

	var rows []memberProfileRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list team_members")
	}

	members := make([]domain.TeamMemberWithProfile, len(rows))
	for i, row := range rows {
		members[i] = domain.TeamMemberWithProfile{
			TeamMember: domain.TeamMember{
				ID:       row.ID,
				TeamID:   row.TeamID,
				UserID:   row.UserID,
				Role:     row.Role,
				JoinedAt: row.JoinedAt,
			},
			Profile: domain.OwnerSummary{ID: row.UserID, FullName: row.FullName, Email: row.Email},
		}
	}
	return members, nil
}

// AddMember inserts a membership. A duplicate returns ErrAlreadyExists.
func (r *Repo) AddMember(ctx context.Context, m domain.TeamMember) (domain.TeamMember, error) {
	query, args, err := postgres.Builder().
		Insert("team_members").
		Columns(memberColumns...).
		Values(m.ID, m.TeamID, m.UserID, m.Role, m.JoinedAt).
		Suffix(postgres.Returning(memberColumns...)).
		ToSql()
	if err != nil {
		return domain.TeamMember{}, fmt.Errorf("build insert team member: %w", err)
	}

	var row memberRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.TeamMember{}, postgres.MapError(err, "team_member", m.UserID)
	}
	return domain.TeamMember(row), nil
}

// UpdateMemberRole changes a member's per-team role.
func (r *Repo) UpdateMemberRole(ctx context.Context, teamID, userID uuid.UUID, role domain.TeamRole) error {
	query, args, err := postgres.Builder().
		Update("team_members").
		Set("role", role).
		Where(sq.Eq{"team_id": teamID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update team member: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "team_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("team_member %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// RemoveMember deletes a membership.
func (r *Repo) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("team_members").
		Where(sq.Eq{"team_id": teamID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete team member: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "team_member", userID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("team_member %s: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// ListMemberships returns the teams a user belongs to.
func (r *Repo) ListMemberships(ctx context.Context, userID uuid.UUID) ([]domain.TeamMember, error) {
	query, args, err := postgres.Builder().
		Select(memberColumns...).
		From("team_members").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list memberships: %w", err)
	}

	var rows []memberRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "list memberships")
	}

	out := make([]domain.TeamMember, len(rows))
	for i, row := range rows {
		out[i] = domain.TeamMember(row)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type teamRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	OwnerID     uuid.UUID `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type memberRow struct {
	ID       uuid.UUID       `db:"id"`
	TeamID   uuid.UUID       `db:"team_id"`
	UserID   uuid.UUID       `db:"user_id"`
	Role     domain.TeamRole `db:"role"`
	JoinedAt time.Time       `db:"joined_at"`
}

type memberProfileRow struct {
	ID       uuid.UUID       `db:"id"`
	TeamID   uuid.UUID       `db:"team_id"`
	UserID   uuid.UUID       `db:"user_id"`
	Role     domain.TeamRole `db:"role"`
	JoinedAt time.Time       `db:"joined_at"`
	FullName *string         `db:"full_name"`
	Email    string          `db:"email"`
}
