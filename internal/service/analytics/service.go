// Package analytics builds the dashboard summary from independent aggregate
// queries run concurrently.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type statsRepo interface {
	LeadBreakdown(ctx context.Context) (domain.LeadBreakdown, error)
	DealsByStage(ctx context.Context) (map[domain.DealStage]domain.StageStat, error)
}

type taskCounter interface {
	CountOpen(ctx context.Context, now time.Time) (pending, overdue int, err error)
}

type activityCounter interface {
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// Service computes dashboard statistics.
type Service struct {
	log        *slog.Logger
	stats      statsRepo
	tasks      taskCounter
	activities activityCounter
	cfg        config.CRMConfig
	now        func() time.Time
}

// NewService creates a new analytics service.
func NewService(
	logger *slog.Logger,
	stats statsRepo,
	tasks taskCounter,
	activities activityCounter,
	cfg config.CRMConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "analytics"),
		stats:      stats,
		tasks:      tasks,
		activities: activities,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard returns the summary shown on the dashboard and reports pages.
// Any authenticated user may read it.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardStats, error) {
	if _, err := auth.ActorFromCtx(ctx); err != nil {
		return domain.DashboardStats{}, err
	}

	now := s.now()
	days := s.cfg.RecentActivityDays
	if days <= 0 {
		days = 7
	}

	var (
		leads            domain.LeadBreakdown
		stages           map[domain.DealStage]domain.StageStat
		pending, overdue int
		recent           int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leads, err = s.stats.LeadBreakdown(gctx)
		if err != nil {
			return fmt.Errorf("lead breakdown: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stages, err = s.stats.DealsByStage(gctx)
		if err != nil {
			return fmt.Errorf("deals by stage: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pending, overdue, err = s.tasks.CountOpen(gctx, now)
		if err != nil {
			return fmt.Errorf("open tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		recent, err = s.activities.CountSince(gctx, now.AddDate(0, 0, -days))
		if err != nil {
			return fmt.Errorf("recent activities: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("analytics.Dashboard: %w", err)
	}

	return summarize(leads, stages, pending, overdue, recent), nil
}

func summarize(
	leads domain.LeadBreakdown,
	stages map[domain.DealStage]domain.StageStat,
	pending, overdue, recent int,
) domain.DashboardStats {
	out := domain.DashboardStats{
		TotalLeads:       leads.Total,
		LeadsByStatus:    make(map[domain.LeadStatus]int, len(domain.LeadStatuses)),
		LeadsBySource:    make(map[domain.LeadSource]int, len(domain.LeadSources)),
		DealsByStage:     make(map[domain.DealStage]domain.StageStat, len(domain.DealStages)),
		ConversionRate:   domain.ConversionRate(leads.ByStatus[domain.LeadStatusConverted], leads.Total),
		TotalDealValue:   decimal.Zero,
		ClosedWonValue:   decimal.Zero,
		OverdueTasks:     overdue,
		PendingTasks:     pending,
		RecentActivities: recent,
	}

	// Every known key is present so clients can render empty columns.
	for _, st := range domain.LeadStatuses {
		out.LeadsByStatus[st] = leads.ByStatus[st]
	}
	for _, src := range domain.LeadSources {
		out.LeadsBySource[src] = leads.BySource[src]
	}
	for _, stage := range domain.DealStages {
		stat, ok := stages[stage]
		if !ok {
			stat = domain.StageStat{Value: decimal.Zero}
		}
		out.DealsByStage[stage] = stat
		out.TotalDealValue = out.TotalDealValue.Add(stat.Value)
	}
	out.ClosedWonValue = out.DealsByStage[domain.DealStageClosedWon].Value

	return out
}
