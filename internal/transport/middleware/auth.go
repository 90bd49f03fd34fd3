package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/crm-backend/internal/auth"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

type actorResolver interface {
	ResolveActor(ctx context.Context, token string) (domain.Actor, error)
}

// Auth resolves the bearer token into an actor. Requests without a token
// pass through anonymously; RequireRole decides whether that is allowed.
// Inactive or suspended accounts are rejected with 403. Any failure other
// than an invalid identity is a 500 and keeps the client signed in.
func Auth(resolver actorResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrForbidden):
					forbidden(w)
				case errors.Is(err, domain.ErrUnauthorized):
					unauthenticated(w, r)
				default:
					logger.ErrorContext(r.Context(), "resolve actor failed",
						slog.String("error", err.Error()),
						slog.String("path", r.URL.Path),
					)
					writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
