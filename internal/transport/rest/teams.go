package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/team"
)

type teamService interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (domain.Team, []domain.TeamMemberWithProfile, error)
	CreateTeam(ctx context.Context, input team.CreateTeamInput) (domain.Team, error)
	UpdateTeam(ctx context.Context, input team.UpdateTeamInput) (domain.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, input team.MemberInput) (domain.TeamMember, error)
	UpdateMemberRole(ctx context.Context, input team.MemberInput) error
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
}

// TeamHandler serves /teams endpoints.
type TeamHandler struct {
	svc teamService
	log *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(svc teamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{svc: svc, log: logger.With("handler", "team")}
}

type teamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type addMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
}

type memberRoleRequest struct {
	Role string `json:"role"`
}

type teamMemberResponse struct {
	TeamID   uuid.UUID `json:"team_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.ListTeams(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(teams, toTeam))
}

// Get handles GET /teams/{id}. Members come back with their profiles.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, members, err := h.svc.GetTeam(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toTeam(t)
	resp.Members = mapSlice(members, toMember)
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /teams. The caller becomes the team owner.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var name string
	if req.Name != nil {
		name = *req.Name
	}
	t, err := h.svc.CreateTeam(r.Context(), team.CreateTeamInput{Name: name, Description: req.Description})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTeam(t))
}

// Update handles PATCH /teams/{id}.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req teamRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	t, err := h.svc.UpdateTeam(r.Context(), team.UpdateTeamInput{
		TeamID:      id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTeam(t))
}

// Delete handles DELETE /teams/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteTeam(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMember handles POST /teams/{id}/members. Role defaults to member.
func (h *TeamHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	role := domain.TeamRole(req.Role)
	if role == "" {
		role = domain.TeamRoleMember
	}

	m, err := h.svc.AddMember(r.Context(), team.MemberInput{TeamID: id, UserID: req.UserID, Role: role})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, teamMemberResponse{
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	})
}

// UpdateMemberRole handles PATCH /teams/{id}/members/{userID}.
func (h *TeamHandler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	teamID, userID, err := memberPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req memberRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.UpdateMemberRole(r.Context(), team.MemberInput{
		TeamID: teamID,
		UserID: userID,
		Role:   domain.TeamRole(req.Role),
	}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember handles DELETE /teams/{id}/members/{userID}.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID, userID, err := memberPath(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveMember(r.Context(), teamID, userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func memberPath(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	teamID, err := pathID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return teamID, userID, nil
}
