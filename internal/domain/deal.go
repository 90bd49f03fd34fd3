package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal is a sales opportunity tracked through pipeline stages.
//
// ActualCloseDate is stamped by MoveTo whenever the deal enters a closed stage
// and is never cleared when it leaves one.
type Deal struct {
	ID                uuid.UUID
	Name              string
	LeadID            *uuid.UUID
	ContactID         *uuid.UUID
	OwnerID           uuid.UUID
	Stage             DealStage
	EstimatedValue    *decimal.Decimal
	ConfirmedValue    *decimal.Decimal
	ExpectedCloseDate *time.Time
	ActualCloseDate   *time.Time
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDeal returns a deal in the initial "inquiry" stage.
func NewDeal(name string, ownerID uuid.UUID, now time.Time) Deal {
	return Deal{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		Stage:     DealStageInquiry,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MoveTo returns the deal moved to stage. Entering closed_won or closed_lost
// stamps ActualCloseDate with the calendar date of now.
func (d Deal) MoveTo(stage DealStage, now time.Time) (Deal, error) {
	if !stage.IsValid() {
		return Deal{}, NewValidationError("stage", "invalid stage")
	}
	d.Stage = stage
	if stage.IsClosed() {
		day := CalendarDate(now)
		d.ActualCloseDate = &day
	}
	d.UpdatedAt = now
	return d, nil
}

// DisplayValue is the confirmed value when present, otherwise the estimated
// value. Nil means the deal has no value at all.
func (d Deal) DisplayValue() *decimal.Decimal {
	if d.ConfirmedValue != nil {
		return d.ConfirmedValue
	}
	return d.EstimatedValue
}

// CalendarDate truncates t to midnight UTC of its calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DealStageChange is one append-only entry of a deal's stage history.
// OldStage is nil only for the seed entry written at creation.
type DealStageChange struct {
	ID        uuid.UUID
	DealID    uuid.UUID
	OldStage  *DealStage
	NewStage  DealStage
	ChangedBy uuid.UUID
	Notes     *string
	CreatedAt time.Time
}

// DealCreatedNote annotates the seed stage history entry.
const DealCreatedNote = "Deal created"

// DealWithOwner is a deal enriched with its owner's profile summary.
type DealWithOwner struct {
	Deal
	Owner *OwnerSummary
}

// PipelineColumn is the derived view of one pipeline stage.
type PipelineColumn struct {
	Stage DealStage
	Deals []Deal
	Count int
	Total decimal.Decimal
}

// BuildPipeline groups deals into one column per stage, in pipeline order.
// Deals without any value count toward Count and add zero to Total.
func BuildPipeline(deals []Deal) []PipelineColumn {
	columns := make([]PipelineColumn, len(DealStages))
	index := make(map[DealStage]int, len(DealStages))
	for i, stage := range DealStages {
		columns[i] = PipelineColumn{Stage: stage, Deals: []Deal{}, Total: decimal.Zero}
		index[stage] = i
	}

	for _, d := range deals {
		i, ok := index[d.Stage]
		if !ok {
			continue
		}
		col := &columns[i]
		col.Deals = append(col.Deals, d)
		col.Count++
		if v := d.DisplayValue(); v != nil {
			col.Total = col.Total.Add(*v)
		}
	}

	return columns
}
