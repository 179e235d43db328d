package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/recruitment-backend/internal/domain"
	"github.com/heartmarshall/recruitment-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (domain.Actor, error)
}

// Auth resolves the bearer token into a domain.Actor stored in the request
// context. Requests without a token pass through anonymously; an invalid
// token is rejected with 401.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			actor, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "access token rejected", slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), actor)))
		})
	}
}

// RequireActor rejects anonymous requests with 401.
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.ActorFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
