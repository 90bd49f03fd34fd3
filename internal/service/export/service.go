// Package export renders leads and deals into an XLSX workbook.
package export

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type leadRepo interface {
	List(ctx context.Context, f domain.LeadFilter) ([]domain.Lead, int, error)
}

type dealRepo interface {
	List(ctx context.Context, f domain.DealFilter) ([]domain.Deal, int, error)
}

type ownerRepo interface {
	GetSummaries(ctx context.Context, ids []uuid.UUID) ([]domain.OwnerSummary, error)
}

// Service builds spreadsheet exports.
type Service struct {
	log    *slog.Logger
	leads  leadRepo
	deals  dealRepo
	owners ownerRepo
	cfg    config.CRMConfig
}

// NewService creates a new export service.
func NewService(logger *slog.Logger, leads leadRepo, deals dealRepo, owners ownerRepo, cfg config.CRMConfig) *Service {
	return &Service{
		log:    logger.With("service", "export"),
		leads:  leads,
		deals:  deals,
		owners: owners,
		cfg:    cfg,
	}
}

// Result describes a finished export.
type Result struct {
	Leads     int
	Deals     int
	Truncated bool
}
