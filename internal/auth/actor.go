package auth

import (
	"context"

	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/pkg/ctxutil"
)

// WithActor stores the authenticated caller in ctx.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = ctxutil.WithUserID(ctx, actor.UserID)
	return ctxutil.WithUserRole(ctx, actor.Role.String())
}

// ActorFromCtx returns the authenticated caller, or domain.ErrUnauthorized
// when the context carries no valid identity.
func ActorFromCtx(ctx context.Context) (domain.Actor, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	role := domain.Role(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return domain.Actor{UserID: userID, Role: role}, nil
}
