// Package task implements the Task repository using PostgreSQL.
package task

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
	"id", "title", "description", "priority", "status", "due_date", "reminder_at",
	"lead_id", "contact_id", "deal_id", "assigned_to", "created_by",
	"completed_at", "completed_by", "created_at", "updated_at",
}

var openStatuses = []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	query, args, err := postgres.Builder().Select(columns...).From("tasks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return domain.Task{}, fmt.Errorf("build get task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// List returns tasks matching the filter ordered by due date (undated last)
// and the total count.
func (r *Repo) List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, int, error) {
	where := sq.And{}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": *f.Status})
	}
	if f.Priority != nil {
		where = append(where, sq.Eq{"priority": *f.Priority})
	}
	if f.AssignedTo != nil {
		where = append(where, sq.Eq{"assigned_to": *f.AssignedTo})
	}
	if link := postgres.LinkEq(f.Link); len(link) > 0 {
		where = append(where, link)
	}
	if f.DueBefore != nil {
		where = append(where, sq.Lt{"due_date": *f.DueBefore})
	}
	if f.OpenOnly {
		where = append(where, sq.Eq{"status": openStatuses})
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("tasks").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count tasks: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapListError(err, "count tasks")
	}

	b := postgres.Builder().Select(columns...).From("tasks").Where(where).
		OrderBy("due_date ASC NULLS LAST", "created_at DESC")
	query, args, err := postgres.Paginate(b, f.Limit, f.Offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list tasks: %w", err)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapListError(err, "list tasks")
	}

	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, total, nil
}

// CountOpen returns the number of open tasks and how many of them are
// overdue at now.
func (r *Repo) CountOpen(ctx context.Context, now time.Time) (pending, overdue int, err error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		Column(sq.Expr("count(*) FILTER (WHERE due_date < ?)", now)).
		From("tasks").
		Where(sq.Eq{"status": openStatuses}).
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("build count open tasks: %w", err)
	}
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&pending, &overdue); err != nil {
		return 0, 0, postgres.MapListError(err, "count open tasks")
	}
	return pending, overdue, nil
}

// Create inserts a new task.
func (r *Repo) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	query, args, err := postgres.Builder().
		Insert("tasks").
		Columns(columns...).
		Values(t.ID, t.Title, t.Description, t.Priority, t.Status, t.DueDate, t.ReminderAt,
			t.Link.LeadID, t.Link.ContactID, t.Link.DealID, t.AssignedTo, t.CreatedBy,
			t.CompletedAt, t.CompletedBy, t.CreatedAt, t.UpdatedAt).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.Task{}, fmt.Errorf("build insert task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", t.ID)
	}
	return row.toDomain(), nil
}

// Update writes every mutable column of t.
func (r *Repo) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	query, args, err := postgres.Builder().
		Update("tasks").
		SetMap(map[string]any{
			"title":        t.Title,
			"description":  t.Description,
			"priority":     t.Priority,
			"status":       t.Status,
			"due_date":     t.DueDate,
			"reminder_at":  t.ReminderAt,
			"lead_id":      t.Link.LeadID,
			"contact_id":   t.Link.ContactID,
			"deal_id":      t.Link.DealID,
			"assigned_to":  t.AssignedTo,
			"completed_at": t.CompletedAt,
			"completed_by": t.CompletedBy,
			"updated_at":   t.UpdatedAt,
		}).
		Where(sq.Eq{"id": t.ID}).
		Suffix(postgres.Returning(columns...)).
		ToSql()
	if err != nil {
		return domain.Task{}, fmt.Errorf("build update task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Task{}, postgres.MapError(err, "task", t.ID)
	}
	return row.toDomain(), nil
}

// Delete removes a task.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().Delete("tasks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete task: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type taskRow struct {
	ID          uuid.UUID           `db:"id"`
	Title       string              `db:"title"`
	Description *string             `db:"description"`
	Priority    domain.TaskPriority `db:"priority"`
	Status      domain.TaskStatus   `db:"status"`
	DueDate     *time.Time          `db:"due_date"`
	ReminderAt  *time.Time          `db:"reminder_at"`
	LeadID      *uuid.UUID          `db:"lead_id"`
	ContactID   *uuid.UUID          `db:"contact_id"`
	DealID      *uuid.UUID          `db:"deal_id"`
	AssignedTo  *uuid.UUID          `db:"assigned_to"`
	CreatedBy   uuid.UUID           `db:"created_by"`
	CompletedAt *time.Time          `db:"completed_at"`
	CompletedBy *uuid.UUID          `db:"completed_by"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		DueDate:     r.DueDate,
		ReminderAt:  r.ReminderAt,
		Link:        domain.Link{LeadID: r.LeadID, ContactID: r.ContactID, DealID: r.DealID},
		AssignedTo:  r.AssignedTo,
		CreatedBy:   r.CreatedBy,
		CompletedAt: r.CompletedAt,
		CompletedBy: r.CompletedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
