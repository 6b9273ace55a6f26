package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sharktalent/backend/internal/api/httpx"
	"github.com/sharktalent/backend/internal/auth"
	"github.com/sharktalent/backend/internal/authz"
	"github.com/sharktalent/backend/internal/models"
)

type callerKey struct{}

func WithCaller(ctx context.Context, c authz.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

func CallerFrom(ctx context.Context) (authz.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(authz.Caller)
	return c, ok
}

type AuthMiddleware struct {
	TM *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{TM: tm}
}

// Auth requires a Bearer access token and puts the resolved caller into
// the request context.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, isRefresh, err := m.TM.ParseAny(token)
		if err != nil || isRefresh {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid access token")
			return
		}

		caller := authz.Caller{ID: claims.UserID, Role: models.Role(claims.Role)}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}
