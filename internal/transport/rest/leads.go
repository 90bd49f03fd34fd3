package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/lead"
)

type leadService interface {
	CreateLead(ctx context.Context, input lead.CreateLeadInput) (domain.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	ListLeads(ctx context.Context, f domain.LeadFilter) ([]domain.Lead, int, error)
	UpdateLead(ctx context.Context, input lead.UpdateLeadInput) (domain.Lead, error)
	ChangeStatus(ctx context.Context, input lead.ChangeStatusInput) (domain.Lead, error)
	Reassign(ctx context.Context, input lead.ReassignInput) (domain.Lead, error)
	Convert(ctx context.Context, input lead.ConvertInput) (lead.ConvertResult, error)
	History(ctx context.Context, leadID uuid.UUID) ([]domain.LeadStatusChange, error)
	Activities(ctx context.Context, leadID uuid.UUID) ([]domain.Activity, error)
	AddActivity(ctx context.Context, input lead.AddActivityInput) (domain.Activity, error)
}

// LeadHandler serves /leads endpoints.
type LeadHandler struct {
	svc leadService
	log *slog.Logger
}

// NewLeadHandler creates a LeadHandler.
func NewLeadHandler(svc leadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{svc: svc, log: logger.With("handler", "lead")}
}

type createLeadRequest struct {
	Name        string     `json:"name"`
	Source      string     `json:"source"`
	OwnerID     *uuid.UUID `json:"owner_id"`
	Phone       *string    `json:"phone"`
	Email       *string    `json:"email"`
	Notes       *string    `json:"notes"`
	InquiryDate *Date      `json:"inquiry_date"`
}

type updateLeadRequest struct {
	Name        *string `json:"name"`
	Source      *string `json:"source"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Notes       *string `json:"notes"`
	InquiryDate *Date   `json:"inquiry_date"`
}

type statusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type reassignRequest struct {
	OwnerID uuid.UUID `json:"owner_id"`
}

type convertResponse struct {
	Lead    leadResponse    `json:"lead"`
	Contact contactResponse `json:"contact"`
}

// List handles GET /leads?search=&status=&source=&owner_id=&limit=&offset=.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := pageFromQuery(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ownerID, err := queryUUID(r, "owner_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	leads, total, err := h.svc.ListLeads(r.Context(), domain.LeadFilter{
		Search:  queryString(r, "search"),
		Status:  queryEnum[domain.LeadStatus](r, "status"),
		Source:  queryEnum[domain.LeadSource](r, "source"),
		OwnerID: ownerID,
		Page:    page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]uuid.UUID, len(leads))
	for i, l := range leads {
		ids[i] = l.OwnerID
	}
	owners := loadOwners(r.Context(), h.log, ids)

	items := make([]leadResponse, len(leads))
	for i, l := range leads {
		items[i] = toLead(l, owners[l.OwnerID])
	}
	writeJSON(w, http.StatusOK, listResponse[leadResponse]{Items: items, Total: total})
}

// Create handles POST /leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.CreateLead(r.Context(), lead.CreateLeadInput{
		Name:        req.Name,
		Source:      domain.LeadSource(req.Source),
		OwnerID:     req.OwnerID,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
		InquiryDate: datePtr(req.InquiryDate),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLead(l, nil))
}

// Get handles GET /leads/{id}.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.GetLead(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	owners := loadOwners(r.Context(), h.log, []uuid.UUID{l.OwnerID})
	writeJSON(w, http.StatusOK, toLead(l, owners[l.OwnerID]))
}

// Update handles PATCH /leads/{id}.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := lead.UpdateLeadInput{
		LeadID:      id,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Notes:       req.Notes,
		InquiryDate: datePtr(req.InquiryDate),
	}
	if req.Source != nil {
		src := domain.LeadSource(*req.Source)
		input.Source = &src
	}

	l, err := h.svc.UpdateLead(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLead(l, nil))
}

// ChangeStatus handles POST /leads/{id}/status.
func (h *LeadHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.ChangeStatus(r.Context(), lead.ChangeStatusInput{
		LeadID: id,
		Status: domain.LeadStatus(req.Status),
		Notes:  req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLead(l, nil))
}

// Reassign handles POST /leads/{id}/reassign.
func (h *LeadHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reassignRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Reassign(r.Context(), lead.ReassignInput{LeadID: id, OwnerID: req.OwnerID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLead(l, nil))
}

// Convert handles POST /leads/{id}/convert. The body describes the contact
// to create.
func (h *LeadHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Convert(r.Context(), lead.ConvertInput{LeadID: id, Contact: req.toDraft()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{
		Lead:    toLead(res.Lead, nil),
		Contact: toContact(res.Contact, nil),
	})
}

// History handles GET /leads/{id}/history.
func (h *LeadHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	changes, err := h.svc.History(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(changes, toLeadHistory))
}

// Activities handles GET /leads/{id}/activities.
func (h *LeadHandler) Activities(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	activities, err := h.svc.Activities(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(activities, toActivity))
}

// AddActivity handles POST /leads/{id}/activities.
func (h *LeadHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req activityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.svc.AddActivity(r.Context(), lead.AddActivityInput{
		LeadID:      id,
		Type:        domain.ActivityType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivity(a))
}

