package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

func newOwnerBatchFn(repo ownerRepo) dataloader.BatchFunc[uuid.UUID, *domain.OwnerSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.OwnerSummary] {
		summaries, err := repo.GetSummaries(ctx, keys)
		if err != nil {
			return errorResults[*domain.OwnerSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.OwnerSummary, len(summaries))
		for i := range summaries {
			byID[summaries[i].ID] = &summaries[i]
		}

		return mapResults(keys, byID, nilValue[domain.OwnerSummary])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() *T { return nil }
