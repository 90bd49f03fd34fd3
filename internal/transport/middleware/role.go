package middleware

import (
	"net/http"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// RequireRole gates a route. With no roles any authenticated user passes.
// Anonymous callers get 401, callers below the required tier get 403.
func RequireRole(roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := auth.ActorFromCtx(r.Context())
			if err != nil {
				unauthenticated(w, r)
				return
			}
			if !auth.CanAccess(actor.Role, roles...) {
				forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
