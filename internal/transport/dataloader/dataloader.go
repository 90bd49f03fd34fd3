// Package dataloader provides per-request DataLoaders that batch owner
// profile lookups for list responses into a single SQL call. Loaders call
// the user repository directly, bypassing the service layer; profile
// summaries are visible to every authenticated user.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type ownerRepo interface {
	GetSummaries(ctx context.Context, ids []uuid.UUID) ([]domain.OwnerSummary, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	OwnerByID *dataloader.Loader[uuid.UUID, *domain.OwnerSummary]
}

// NewLoaders creates a new set of DataLoaders. Must be called per request
// (loaders cache results within a single request).
func NewLoaders(owners ownerRepo) *Loaders {
	return &Loaders{
		OwnerByID: dataloader.NewBatchedLoader(
			newOwnerBatchFn(owners),
			dataloader.WithWait[uuid.UUID, *domain.OwnerSummary](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *domain.OwnerSummary](maxBatch),
		),
	}
}

// Owners resolves the summaries of ids in one batch. Unknown ids map to nil.
func (l *Loaders) Owners(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.OwnerSummary, error) {
	out := make(map[uuid.UUID]*domain.OwnerSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			out[id] = nil
			unique = append(unique, id)
		}
	}

	results, errs := l.OwnerByID.LoadMany(ctx, unique)()
	for i, id := range unique {
		if len(errs) > i && errs[i] != nil {
			return nil, errs[i]
		}
		out[id] = results[i]
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
