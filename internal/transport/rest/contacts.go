package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/contact"
)

type contactService interface {
	CreateContact(ctx context.Context, input contact.CreateContactInput) (domain.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (domain.ContactDetail, error)
	ListContacts(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error)
	UpdateContact(ctx context.Context, input contact.UpdateContactInput) (domain.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
	Activities(ctx context.Context, contactID uuid.UUID) ([]domain.Activity, error)
	AddActivity(ctx context.Context, input contact.AddActivityInput) (domain.Activity, error)
}

// ContactHandler serves /contacts endpoints.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

type createContactRequest struct {
	contactRequest
	OwnerID *uuid.UUID `json:"owner_id"`
}

// List handles GET /contacts?search=&owner_id=&limit=&offset=.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
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

	contacts, total, err := h.svc.ListContacts(r.Context(), domain.ContactFilter{
		Search:  queryString(r, "search"),
		OwnerID: ownerID,
		Page:    page,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	ids := make([]uuid.UUID, len(contacts))
	for i, c := range contacts {
		ids[i] = c.OwnerID
	}
	owners := loadOwners(r.Context(), h.log, ids)

	items := make([]contactResponse, len(contacts))
	for i, c := range contacts {
		items[i] = toContact(c, owners[c.OwnerID])
	}
	writeJSON(w, http.StatusOK, listResponse[contactResponse]{Items: items, Total: total})
}

// Create handles POST /contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.CreateContact(r.Context(), contact.CreateContactInput{
		Contact: req.toDraft(),
		OwnerID: req.OwnerID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContact(c, nil))
}

// Get handles GET /contacts/{id}. The owner comes back with the contact.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	detail, err := h.svc.GetContact(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContact(detail.Contact, detail.Owner))
}

// Update handles PUT /contacts/{id}. Phones and e-mails are replaced.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.UpdateContact(r.Context(), contact.UpdateContactInput{
		ContactID: id,
		Contact:   req.toDraft(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toContact(c, nil))
}

// Delete handles DELETE /contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteContact(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Activities handles GET /contacts/{id}/activities.
func (h *ContactHandler) Activities(w http.ResponseWriter, r *http.Request) {
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

// AddActivity handles POST /contacts/{id}/activities.
func (h *ContactHandler) AddActivity(w http.ResponseWriter, r *http.Request) {
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

	a, err := h.svc.AddActivity(r.Context(), contact.AddActivityInput{
		ContactID:   id,
		Type:        domain.ActivityType(req.Type),
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivity(a))
}
