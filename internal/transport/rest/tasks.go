package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/task"
)

type taskService interface {
	CreateTask(ctx context.Context, input task.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
	ListTasks(ctx context.Context, f domain.TaskFilter) ([]domain.Task, int, error)
	ListOverdue(ctx context.Context, f domain.TaskFilter) ([]domain.Task, int, error)
	UpdateTask(ctx context.Context, input task.UpdateTaskInput) (domain.Task, error)
	UpdateStatus(ctx context.Context, input task.UpdateStatusInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

// TaskHandler serves /tasks endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *Date      `json:"due_date"`
	ReminderAt  *Date      `json:"reminder_at"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	linkRequest
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	DueDate     *Date      `json:"due_date"`
	ReminderAt  *Date      `json:"reminder_at"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	Clear       []string   `json:"clear"`
	linkRequest
}

type taskStatusRequest struct {
	Status string `json:"status"`
}

func taskFilter(r *http.Request) (domain.TaskFilter, error) {
	var f domain.TaskFilter
	var err error
	if f.Page, err = pageFromQuery(r); err != nil {
		return f, err
	}
	if f.AssignedTo, err = queryUUID(r, "assigned_to"); err != nil {
		return f, err
	}
	if f.Link, err = linkFromQuery(r); err != nil {
		return f, err
	}
	if f.DueBefore, err = queryDate(r, "due_before"); err != nil {
		return f, err
	}
	f.Status = queryEnum[domain.TaskStatus](r, "status")
	f.Priority = queryEnum[domain.TaskPriority](r, "priority")
	f.OpenOnly = r.URL.Query().Get("open") == "true"
	return f, nil
}

// List handles GET /tasks?status=&priority=&assigned_to=&lead_id=&contact_id=&deal_id=&due_before=&open=.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := taskFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, total, err := h.svc.ListTasks(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[taskResponse]{Items: mapSlice(tasks, toTask), Total: total})
}

// Overdue handles GET /tasks/overdue.
func (h *TaskHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	f, err := taskFilter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tasks, total, err := h.svc.ListOverdue(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[taskResponse]{Items: mapSlice(tasks, toTask), Total: total})
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.CreateTask(r.Context(), task.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     datePtr(req.DueDate),
		ReminderAt:  datePtr(req.ReminderAt),
		Link:        req.linkRequest.toDomain(),
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTask(t))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTask(t))
}

// Update handles PATCH /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := task.UpdateTaskInput{
		TaskID:      id,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     datePtr(req.DueDate),
		ReminderAt:  datePtr(req.ReminderAt),
		AssignedTo:  req.AssignedTo,
		LeadID:      req.LeadID,
		ContactID:   req.ContactID,
		DealID:      req.DealID,
		Clear:       req.Clear,
	}
	if req.Priority != nil {
		p := domain.TaskPriority(*req.Priority)
		input.Priority = &p
	}

	t, err := h.svc.UpdateTask(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTask(t))
}

// UpdateStatus handles POST /tasks/{id}/status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req taskStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.UpdateStatus(r.Context(), task.UpdateStatusInput{
		TaskID: id,
		Status: domain.TaskStatus(req.Status),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTask(t))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
