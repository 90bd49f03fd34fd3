package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/communication"
	"github.com/heartmarshall/crm-backend/internal/service/note"
)

type noteService interface {
	AddNote(ctx context.Context, input note.AddNoteInput) (domain.Note, error)
	ListNotes(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Note, error)
}

type communicationService interface {
	Log(ctx context.Context, input communication.LogInput) (domain.Communication, error)
	List(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Communication, error)
}

// RecordHandler serves notes and logged communications. Both are listed by
// the lead, contact or deal they belong to.
type RecordHandler struct {
	notes noteService
	comms communicationService
	log   *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(notes noteService, comms communicationService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{notes: notes, comms: comms, log: logger.With("handler", "record")}
}

type noteRequest struct {
	Content string `json:"content"`
	linkRequest
}

type communicationRequest struct {
	Type            string  `json:"type"`
	Direction       string  `json:"direction"`
	Subject         *string `json:"subject"`
	Content         *string `json:"content"`
	DurationMinutes *int    `json:"duration_minutes"`
	ScheduledAt     *Date   `json:"scheduled_at"`
	linkRequest
}

func linkAndPage(r *http.Request) (domain.Link, domain.Page, error) {
	link, err := linkFromQuery(r)
	if err != nil {
		return link, domain.Page{}, err
	}
	page, err := pageFromQuery(r)
	return link, page, err
}

// ListNotes handles GET /notes?lead_id=|contact_id=|deal_id=.
func (h *RecordHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	link, page, err := linkAndPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	notes, err := h.notes.ListNotes(r.Context(), link, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(notes, toNote))
}

// AddNote handles POST /notes.
func (h *RecordHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	n, err := h.notes.AddNote(r.Context(), note.AddNoteInput{
		Content: req.Content,
		Link:    req.linkRequest.toDomain(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNote(n))
}

// ListCommunications handles GET /communications?lead_id=|contact_id=|deal_id=.
func (h *RecordHandler) ListCommunications(w http.ResponseWriter, r *http.Request) {
	link, page, err := linkAndPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comms, err := h.comms.List(r.Context(), link, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(comms, toCommunication))
}

// LogCommunication handles POST /communications.
func (h *RecordHandler) LogCommunication(w http.ResponseWriter, r *http.Request) {
	var req communicationRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.comms.Log(r.Context(), communication.LogInput{
		Type:            domain.CommunicationType(req.Type),
		Direction:       domain.CommunicationDirection(req.Direction),
		Subject:         req.Subject,
		Content:         req.Content,
		DurationMinutes: req.DurationMinutes,
		ScheduledAt:     datePtr(req.ScheduledAt),
		Link:            req.linkRequest.toDomain(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommunication(c))
}
