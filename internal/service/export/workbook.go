package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	SheetLeads = "Leads"
	SheetDeals = "Deals"

	dateLayout = "2006-01-02"
)

var (
	leadHeaders = []string{"Name", "Phone", "Email", "Source", "Status", "Owner", "Inquiry Date", "Created At"}
	dealHeaders = []string{"Name", "Stage", "Estimated Value", "Confirmed Value", "Owner", "Expected Close", "Actual Close", "Created At"}
)

// Write renders the Leads and Deals sheets to w. Only managers and admins
// may export. Each sheet holds at most ExportMaxRows records, newest first.
func (s *Service) Write(ctx context.Context, w io.Writer) (Result, error) {
	actor, err := auth.ActorFromCtx(ctx)
	if err != nil {
		return Result{}, err
	}
	if err := auth.RequireRole(actor, domain.RoleManager); err != nil {
		return Result{}, err
	}

	leads, deals, res, err := s.load(ctx)
	if err != nil {
		return Result{}, err
	}

	owners, err := s.ownerNames(ctx, leads, deals)
	if err != nil {
		return Result{}, err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.log.WarnContext(ctx, "close workbook", slog.String("error", cerr.Error()))
		}
	}()

	if err := buildWorkbook(f, leads, deals, owners); err != nil {
		return Result{}, fmt.Errorf("export.Write build: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return Result{}, fmt.Errorf("export.Write: %w", err)
	}

	s.log.InfoContext(ctx, "export written",
		slog.String("user_id", actor.UserID.String()),
		slog.Int("leads", res.Leads),
		slog.Int("deals", res.Deals),
		slog.Bool("truncated", res.Truncated),
	)
	return res, nil
}

func (s *Service) load(ctx context.Context) ([]domain.Lead, []domain.Deal, Result, error) {
	limit := s.cfg.ExportMaxRows
	if limit <= 0 {
		limit = 10000
	}

	var (
		leads                []domain.Lead
		deals                []domain.Deal
		leadTotal, dealTotal int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, leadTotal, err = s.leads.List(gctx, domain.LeadFilter{Page: domain.Page{Limit: limit}})
		if err != nil {
			return fmt.Errorf("list leads: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		deals, dealTotal, err = s.deals.List(gctx, domain.DealFilter{Page: domain.Page{Limit: limit}})
		if err != nil {
			return fmt.Errorf("list deals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, Result{}, fmt.Errorf("export.Write load: %w", err)
	}

	return leads, deals, Result{
		Leads:     len(leads),
		Deals:     len(deals),
		Truncated: leadTotal > len(leads) || dealTotal > len(deals),
	}, nil
}

func (s *Service) ownerNames(ctx context.Context, leads []domain.Lead, deals []domain.Deal) (map[uuid.UUID]string, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, l := range leads {
		add(l.OwnerID)
	}
	for _, d := range deals {
		add(d.OwnerID)
	}

	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	summaries, err := s.owners.GetSummaries(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("export.Write owners: %w", err)
	}
	for _, o := range summaries {
		if o.FullName != nil && *o.FullName != "" {
			names[o.ID] = *o.FullName
		} else {
			names[o.ID] = o.Email
		}
	}
	return names, nil
}

func buildWorkbook(f *excelize.File, leads []domain.Lead, deals []domain.Deal, owners map[uuid.UUID]string) error {
	if err := f.SetSheetName("Sheet1", SheetLeads); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetDeals); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	leadRows := make([][]any, len(leads))
	for i, l := range leads {
		leadRows[i] = []any{
			l.Name,
			deref(l.Phone),
			deref(l.Email),
			l.Source.String(),
			l.Status.String(),
			owners[l.OwnerID],
			l.InquiryDate.Format(dateLayout),
			l.CreatedAt.Format(time.RFC3339),
		}
	}
	if err := writeSheet(f, SheetLeads, leadHeaders, leadRows, headerStyle); err != nil {
		return err
	}

	dealRows := make([][]any, len(deals))
	for i, d := range deals {
		dealRows[i] = []any{
			d.Name,
			d.Stage.String(),
			money(d.EstimatedValue),
			money(d.ConfirmedValue),
			owners[d.OwnerID],
			date(d.ExpectedCloseDate),
			date(d.ActualCloseDate),
			d.CreatedAt.Format(time.RFC3339),
		}
	}
	return writeSheet(f, SheetDeals, dealHeaders, dealRows, headerStyle)
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("%s header range: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("%s header style: %w", sheet, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("%s columns: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return fmt.Errorf("%s column width: %w", sheet, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// money renders a value as a float cell so spreadsheets can sum it; nil is blank.
func money(v *decimal.Decimal) any {
	if v == nil {
		return ""
	}
	f, _ := v.Float64()
	return f
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
