package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const maxNameLength = 255

// UploadInput holds a file to attach to a lead, contact or deal.
// Category defaults to "other".
type UploadInput struct {
	Name     string
	MimeType string
	Data     []byte
	Category domain.DocumentCategory
	Link     domain.Link
}

// Validate checks all fields and collects all errors. maxBytes of zero
// disables the size limit.
func (i UploadInput) Validate(maxBytes int64) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty file"})
	}
	if maxBytes > 0 && int64(len(i.Data)) > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: fmt.Sprintf("max %d bytes", maxBytes)})
	}
	if i.Category != "" && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Link.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "link", Message: "lead, contact or deal required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// objectPath builds {uploader}/{linkType}/{linkId}/{ksuid}.{ext}. The
// link must not be empty.
func objectPath(uploader uuid.UUID, link domain.Link, name string) string {
	linkType, linkID, _ := link.Primary()
	key := ksuid.New().String()
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" && ext != "." {
		key += ext
	}
	return fmt.Sprintf("%s/%s/%s/%s", uploader, linkType, linkID, key)
}
