package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/export"
)

type dashboardService interface {
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
}

type exportService interface {
	Write(ctx context.Context, w io.Writer) (export.Result, error)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the dashboard and the spreadsheet export.
type ReportHandler struct {
	stats   dashboardService
	exports exportService
	log     *slog.Logger
	now     func() time.Time
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(stats dashboardService, exports exportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		stats:   stats,
		exports: exports,
		log:     logger.With("handler", "report"),
		now:     time.Now,
	}
}

// Dashboard handles GET /analytics/dashboard.
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboard(stats))
}

// Export handles GET /reports/export. The workbook is built in memory so a
// failure can still be reported as JSON.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	res, err := h.exports.Write(r.Context(), &buf)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	name := fmt.Sprintf("crm-export-%s.xlsx", h.now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Export-Leads", strconv.Itoa(res.Leads))
	w.Header().Set("X-Export-Deals", strconv.Itoa(res.Deals))
	if res.Truncated {
		w.Header().Set("X-Export-Truncated", "true")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.WarnContext(r.Context(), "write export", slog.String("error", err.Error()))
	}
}
