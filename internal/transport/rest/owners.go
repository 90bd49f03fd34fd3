package rest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/transport/dataloader"
)

// loadOwners batches owner lookups through the request's loaders. Owner
// details are decoration: on failure the response goes out without them.
func loadOwners(ctx context.Context, log *slog.Logger, ids []uuid.UUID) map[uuid.UUID]*domain.OwnerSummary {
	owners, err := dataloader.FromContext(ctx).Owners(ctx, ids)
	if err != nil {
		log.WarnContext(ctx, "load owners", slog.String("error", err.Error()))
		return map[uuid.UUID]*domain.OwnerSummary{}
	}
	return owners
}
