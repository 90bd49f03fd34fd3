// Package analytics implements the read-only aggregate queries behind the
// dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Repo runs dashboard aggregates against PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new analytics repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// LeadBreakdown groups all leads by (status, source).
func (r *Repo) LeadBreakdown(ctx context.Context) (domain.LeadBreakdown, error) {
	query, args, err := postgres.Builder().
		Select("status", "source", "count(*) AS n").
		From("leads").
		GroupBy("status", "source").
		ToSql()
	if err != nil {
		return domain.LeadBreakdown{}, fmt.Errorf("build lead breakdown: %w", err)
	}

	var rows []struct {
		Status domain.LeadStatus `db:"status"`
		Source domain.LeadSource `db:"source"`
		N      int               `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.LeadBreakdown{}, postgres.MapListError(err, "lead breakdown")
	}

	out := domain.LeadBreakdown{
		ByStatus: make(map[domain.LeadStatus]int, len(domain.LeadStatuses)),
		BySource: make(map[domain.LeadSource]int, len(domain.LeadSources)),
	}
	for _, s := range domain.LeadStatuses {
		out.ByStatus[s] = 0
	}
	for _, s := range domain.LeadSources {
		out.BySource[s] = 0
	}
	for _, row := range rows {
		out.Total += row.N
		out.ByStatus[row.Status] += row.N
		out.BySource[row.Source] += row.N
	}
	return out, nil
}

// DealsByStage returns the count and total display value of deals per stage.
// Every stage is present in the result.
func (r *Repo) DealsByStage(ctx context.Context) (map[domain.DealStage]domain.StageStat, error) {
	query, args, err := postgres.Builder().
		Select("stage", "count(*) AS n", "COALESCE(sum(COALESCE(confirmed_value, estimated_value)), 0) AS total").
		From("deals").
		GroupBy("stage").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deals by stage: %w", err)
	}

	var rows []struct {
		Stage domain.DealStage `db:"stage"`
		N     int              `db:"n"`
		Total decimal.Decimal  `db:"total"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapListError(err, "deals by stage")
	}

	out := make(map[domain.DealStage]domain.StageStat, len(domain.DealStages))
	for _, s := range domain.DealStages {
		out[s] = domain.StageStat{Value: decimal.Zero}
	}
	for _, row := range rows {
		out[row.Stage] = domain.StageStat{Count: row.N, Value: row.Total}
	}
	return out, nil
}
