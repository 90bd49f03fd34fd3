package domain

import "github.com/shopspring/decimal"

// StageStat is the count and total display value of deals in one stage.
type StageStat struct {
	Count int
	Value decimal.Decimal
}

// DashboardStats is the summary shown on the dashboard and reports pages.
type DashboardStats struct {
	TotalLeads       int
	LeadsByStatus    map[LeadStatus]int
	LeadsBySource    map[LeadSource]int
	DealsByStage     map[DealStage]StageStat
	ConversionRate   float64
	TotalDealValue   decimal.Decimal
	ClosedWonValue   decimal.Decimal
	OverdueTasks     int
	PendingTasks     int
	RecentActivities int
}

// ConversionRate returns converted/total as a percentage rounded to one decimal.
func ConversionRate(converted, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(converted)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
	f, _ := rate.Float64()
	return f
}

// LeadBreakdown counts leads by status and by source.
type LeadBreakdown struct {
	Total    int
	ByStatus map[LeadStatus]int
	BySource map[LeadSource]int
}
