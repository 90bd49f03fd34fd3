package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/auditlog"
)

// CreateTask inserts a pending task created by the caller.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (domain.Task, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}
	if err := s.checkAssignee(ctx, actor, input.AssignedTo); err != nil {
		return domain.Task{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	now := s.now()
	created, err := s.tasks.Create(ctx, domain.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: domain.TrimOptional(input.Description),
		Priority:    priority,
		Status:      domain.TaskStatusPending,
		DueDate:     input.DueDate,
		ReminderAt:  input.ReminderAt,
		Link:        input.Link,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.audit.Log(ctx, record(domain.AuditTaskCreate, created.ID, nil, snapshot(created)))

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", created.ID.String()),
	)

	return created, nil
}

// UpdateTask edits every field except status and the completion stamp.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (domain.Task, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	before, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	if err := auth.RequireModify(actor, holders(before)...); err != nil {
		return domain.Task{}, err
	}
	if input.AssignedTo != nil && (before.AssignedTo == nil || *before.AssignedTo != *input.AssignedTo) {
		if err := s.checkAssignee(ctx, actor, input.AssignedTo); err != nil {
			return domain.Task{}, err
		}
	}

	next := applyUpdate(before, input)
	next.UpdatedAt = s.now()

	updated, err := s.tasks.Update(ctx, next)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	if oldValues, newValues := auditlog.Diff(snapshot(before), snapshot(updated)); len(newValues) > 0 {
		s.audit.Log(ctx, record(domain.AuditTaskUpdate, updated.ID, oldValues, newValues))
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", updated.ID.String()),
	)

	return updated, nil
}

func applyUpdate(t domain.Task, input UpdateTaskInput) domain.Task {
	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = domain.TrimOptional(input.Description)
	}
	if input.Priority != nil {
		t.Priority = *input.Priority
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}
	if input.ReminderAt != nil {
		t.ReminderAt = input.ReminderAt
	}
	if input.AssignedTo != nil {
		t.AssignedTo = input.AssignedTo
	}
	if input.LeadID != nil {
		t.Link.LeadID = input.LeadID
	}
	if input.ContactID != nil {
		t.Link.ContactID = input.ContactID
	}
	if input.DealID != nil {
		t.Link.DealID = input.DealID
	}

	for _, f := range input.Clear {
		switch f {
		case FieldDescription:
			t.Description = nil
		case FieldDueDate:
			t.DueDate = nil
		case FieldReminderAt:
			t.ReminderAt = nil
		case FieldAssignedTo:
			t.AssignedTo = nil
		case FieldLeadID:
			t.Link.LeadID = nil
		case FieldContactID:
			t.Link.ContactID = nil
		case FieldDealID:
			t.Link.DealID = nil
		}
	}
	return t
}

// UpdateStatus moves a task to another status. Entering completed stamps
// completed_at and completed_by; any other status clears both.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (domain.Task, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.Task{}, err
	}

	before, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	if err := auth.RequireModify(actor, holders(before)...); err != nil {
		return domain.Task{}, err
	}
	if before.Status == input.Status {
		return before, nil
	}

	next, err := before.WithStatus(input.Status, actor.UserID, s.now())
	if err != nil {
		return domain.Task{}, err
	}
	updated, err := s.tasks.Update(ctx, next)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task status: %w", err)
	}

	s.audit.Log(ctx, record(domain.AuditTaskStatusChange, updated.ID,
		map[string]any{"status": before.Status},
		map[string]any{"status": updated.Status},
	))

	s.log.InfoContext(ctx, "task status changed",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", updated.ID.String()),
		slog.String("from", before.Status.String()),
		slog.String("to", updated.Status.String()),
	)

	return updated, nil
}

// DeleteTask removes a task. Allowed for its creator, its assignee, managers
// and admins.
func (s *Service) DeleteTask(ctx context.Context, id uuid.UUID) error {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if err := auth.RequireModify(actor, holders(t)...); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.audit.Log(ctx, record(domain.AuditTaskDelete, id, snapshot(t), nil))

	s.log.InfoContext(ctx, "task deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("task_id", id.String()),
	)
	return nil
}

// GetTask returns one task.
func (s *Service) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return domain.Task{}, err
	}
	return s.tasks.GetByID(ctx, id)
}

// ListTasks returns a filtered page of tasks ordered by due date and the total.
func (s *Service) ListTasks(ctx context.Context, f domain.TaskFilter) ([]domain.Task, int, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, 0, err
	}
	if f.Status != nil && !f.Status.IsValid() {
		return nil, 0, domain.NewValidationError("status", "invalid status")
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return nil, 0, domain.NewValidationError("priority", "invalid priority")
	}
	f.Limit = s.cfg.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)

	return s.tasks.List(ctx, f)
}

// ListOverdue returns open tasks whose due date has passed.
func (s *Service) ListOverdue(ctx context.Context, f domain.TaskFilter) ([]domain.Task, int, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return nil, 0, err
	}
	now := s.now()
	f.Status = nil
	f.OpenOnly = true
	f.DueBefore = &now
	f.Limit = s.cfg.ClampLimit(f.Limit)
	f.Offset = max(f.Offset, 0)

	return s.tasks.List(ctx, f)
}

// checkAssignee requires an existing profile when the task is assigned to
// someone other than the caller.
func (s *Service) checkAssignee(ctx context.Context, actor domain.Actor, assignee *uuid.UUID) error {
	if assignee == nil || *assignee == actor.UserID {
		return nil
	}
	if _, err := s.profiles.GetByID(ctx, *assignee); err != nil {
		return fmt.Errorf("get assignee: %w", err)
	}
	return nil
}

