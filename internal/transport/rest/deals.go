package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/deal"
)

type dealService interface {
	CreateDeal(ctx context.Context, input deal.CreateDealInput) (domain.Deal, error)
	GetDeal(ctx context.Context, id uuid.UUID) (domain.Deal, error)
	ListDeals(ctx context.Context, f domain.DealFilter) ([]domain.Deal, int, error)
	Pipeline(ctx context.Context, f domain.DealFilter) ([]domain.PipelineColumn, error)
	UpdateDeal(ctx context.Context, input deal.UpdateDealInput) (domain.Deal, error)
	UpdateStage(ctx context.Context, input deal.UpdateStageInput) (domain.Deal, error)
	Reassign(ctx context.Context, input deal.ReassignInput) (domain.Deal, error)
	History(ctx context.Context, dealID uuid.UUID) ([]domain.DealStageChange, error)
	Activities(ctx context.Context, dealID uuid.UUID) ([]domain.Activity, error)
	AddActivity(ctx context.Context, input deal.AddActivityInput) (domain.Activity, error)
}

// DealHandler serves /deals endpoints.
type DealHandler struct {
	svc dealService
	log *slog.Logger
}

// NewDealHandler creates a DealHandler.
func NewDealHandler(svc dealService, logger *slog.Logger) *DealHandler {
	return &DealHandler{svc: svc, log: logger.With("handler", "deal")}
}

type createDealRequest struct {
	Name              string           `json:"name"`
	OwnerID           *uuid.UUID       `json:"owner_id"`
	LeadID            *uuid.UUID       `json:"lead_id"`
	ContactID         *uuid.UUID       `json:"contact_id"`
	EstimatedValue    *decimal.Decimal `json:"estimated_value"`
	ConfirmedValue    *decimal.Decimal `json:"confirmed_value"`
	ExpectedCloseDate *Date            `json:"expected_close_date"`
	Notes             *string          `json:"notes"`
}

// updateDealRequest carries a partial update. Clear names fields to null out.
type updateDealRequest struct {
	Name              *string          `json:"name"`
	LeadID            *uuid.UUID       `json:"lead_id"`
	ContactID         *uuid.UUID       `json:"contact_id"`
	EstimatedValue    *decimal.Decimal `json:"estimated_value"`
	ConfirmedValue    *decimal.Decimal `json:"confirmed_value"`
	ExpectedCloseDate *Date            `json:"expected_close_date"`
	Notes             *string          `json:"notes"`
	Clear             []string         `json:"clear"`
}

type stageRequest struct {
	Stage string  `json:"stage"`
	Notes *string `json:"notes"`
}

func (h *DealHandler) filter(r *http.Request) (domain.DealFilter, error) {
	var f domain.DealFilter
	var err error
	if f.Page, err = pageFromQuery(r); err != nil {
		return f, err
	}
	if f.OwnerID, err = queryUUID(r, "owner_id"); err != nil {
		return f, err
	}
	if f.LeadID, err = queryUUID(r, "lead_id"); err != nil {
		return f, err
	}
	if f.ContactID, err = queryUUID(r, "contact_id"); err != nil {
		return f, err
	}
	f.Search = queryString(r, "search")
	f.Stage = queryEnum[domain.DealStage](r, "stage")
	return f, nil
}

func (h *DealHandler) owners(r *http.Request, deals []domain.Deal) map[uuid.UUID]*domain.OwnerSummary {
	ids := make([]uuid.UUID, len(deals))
	for i, d := range deals {
		ids[i] = d.OwnerID
	}
	return loadOwners(r.Context(), h.log, ids)
}

// List handles GET /deals.
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := h.filter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	deals, total, err := h.svc.ListDeals(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	owners := h.owners(r, deals)
	items := make([]dealResponse, len(deals))
	for i, d := range deals {
		items[i] = toDeal(d, owners[d.OwnerID])
	}
	writeJSON(w, http.StatusOK, listResponse[dealResponse]{Items: items, Total: total})
}

// Pipeline handles GET /deals/pipeline: one column per stage, in board order.
func (h *DealHandler) Pipeline(w http.ResponseWriter, r *http.Request) {
	f, err := h.filter(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	columns, err := h.svc.Pipeline(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var all []domain.Deal
	for _, c := range columns {
		all = append(all, c.Deals...)
	}
	owners := h.owners(r, all)

	resp := make([]pipelineColumnResponse, len(columns))
	for i, c := range columns {
		deals := make([]dealResponse, len(c.Deals))
		for j, d := range c.Deals {
			deals[j] = toDeal(d, owners[d.OwnerID])
		}
		resp[i] = pipelineColumnResponse{
			Stage: string(c.Stage),
			Count: c.Count,
			Total: c.Total,
			Deals: deals,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /deals.
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.CreateDeal(r.Context(), deal.CreateDealInput{
		Name:              req.Name,
		OwnerID:           req.OwnerID,
		LeadID:            req.LeadID,
		ContactID:         req.ContactID,
		EstimatedValue:    req.EstimatedValue,
		ConfirmedValue:    req.ConfirmedValue,
		ExpectedCloseDate: datePtr(req.ExpectedCloseDate),
		Notes:             req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeal(d, nil))
}

// Get handles GET /deals/{id}.
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.GetDeal(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	owners := h.owners(r, []domain.Deal{d})
	writeJSON(w, http.StatusOK, toDeal(d, owners[d.OwnerID]))
}

// Update handles PATCH /deals/{id}.
func (h *DealHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateDealRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.UpdateDeal(r.Context(), deal.UpdateDealInput{
		DealID:            id,
		Name:              req.Name,
		LeadID:            req.LeadID,
		ContactID:         req.ContactID,
		EstimatedValue:    req.EstimatedValue,
		ConfirmedValue:    req.ConfirmedValue,
		ExpectedCloseDate: datePtr(req.ExpectedCloseDate),
		Notes:             req.Notes,
		Clear:             req.Clear,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeal(d, nil))
}

// UpdateStage handles POST /deals/{id}/stage.
func (h *DealHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req stageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.UpdateStage(r.Context(), deal.UpdateStageInput{
		DealID: id,
		Stage:  domain.DealStage(req.Stage),
		Notes:  req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeal(d, nil))
}

// Reassign handles POST /deals/{id}/reassign.
func (h *DealHandler) Reassign(w http.ResponseWriter, r *http.Request) {
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

	d, err := h.svc.Reassign(r.Context(), deal.ReassignInput{DealID: id, OwnerID: req.OwnerID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeal(d, nil))
}

// History handles GET /deals/{id}/history.
func (h *DealHandler) History(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, mapSlice(changes, toDealHistory))
}

// Activities handles GET /deals/{id}/activities.
func (h *DealHandler) Activities(w http.ResponseWriter, r *http.Request) {
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

// AddActivity handles POST /deals/{id}/activities.
func (h *DealHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
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

	a, err := h.svc.AddActivity(r.Context(), deal.AddActivityInput{
		DealID:      id,
		Type:        domain.ActivityType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivity(a))
}
