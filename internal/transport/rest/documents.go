package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/document"
)

type documentService interface {
	Upload(ctx context.Context, input document.UploadInput) (domain.Document, error)
	SignedURL(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, link domain.Link, page domain.Page) ([]domain.Document, error)
}

// DocumentHandler serves /documents endpoints.
type DocumentHandler struct {
	svc      documentService
	maxBytes int64
	log      *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler. Uploads larger than
// maxBytes are rejected before they reach the service.
func NewDocumentHandler(svc documentService, maxBytes int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "document")}
}

type signedURLResponse struct {
	URL string `json:"url"`
}

// List handles GET /documents?lead_id=|contact_id=|deal_id=.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	link, page, err := linkAndPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	docs, err := h.svc.List(r.Context(), link, page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(docs, toDocument))
}

// Upload handles POST /documents as multipart/form-data with a "file" part
// and optional category, lead_id, contact_id and deal_id fields.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Room for the form fields on top of the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+64<<10)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var link domain.Link
	for _, f := range []struct {
		name string
		dst  **uuid.UUID
	}{
		{"lead_id", &link.LeadID},
		{"contact_id", &link.ContactID},
		{"deal_id", &link.DealID},
	} {
		v := r.FormValue(f.name)
		if v == "" {
			continue
		}
		id, err := uuid.Parse(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError(f.name, "must be a UUID"))
			return
		}
		*f.dst = &id
	}

	doc, err := h.svc.Upload(r.Context(), document.UploadInput{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
		Category: domain.DocumentCategory(r.FormValue("category")),
		Link:     link,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDocument(doc))
}

// SignedURL handles GET /documents/{id}/url.
func (h *DocumentHandler) SignedURL(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	url, err := h.svc.SignedURL(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, signedURLResponse{URL: url})
}

// Delete handles DELETE /documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
