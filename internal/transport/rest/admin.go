package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

type userAdminService interface {
	ListUsers(ctx context.Context, page domain.Page) ([]domain.Profile, int, error)
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.Role) (domain.Profile, error)
	SetUserStatus(ctx context.Context, targetUserID uuid.UUID, status domain.ProfileStatus) (domain.Profile, error)
}

type auditReader interface {
	List(ctx context.Context, f domain.AuditFilter) ([]domain.AuditEntry, error)
}

// AdminHandler serves admin-only REST endpoints.
type AdminHandler struct {
	users userAdminService
	audit auditReader
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userAdminService, audit auditReader, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{users: users, audit: audit, log: logger.With("handler", "admin")}
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[profileResponse]{Items: mapSlice(users, toProfile), Total: total})
}

// SetUserRole handles PATCH /admin/users/{id}/role.
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.users.SetUserRole(r.Context(), id, domain.Role(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(p))
}

// SetUserStatus handles PATCH /admin/users/{id}/status.
func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.users.SetUserStatus(r.Context(), id, domain.ProfileStatus(req.Status))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(p))
}

// AuditLogs handles GET /admin/audit-logs?action=&entity_type=&user_id=.
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	userID, err := queryUUID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.audit.List(r.Context(), domain.AuditFilter{
		Action:     queryEnum[domain.AuditAction](r, "action"),
		EntityType: queryEnum[domain.EntityType](r, "entity_type"),
		UserID:     userID,
		Page:       page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toAudit))
}
