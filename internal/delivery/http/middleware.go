package http

import (
	"context"
	"net/http"
	"strings"

	"vowline/internal/entity"
	"vowline/internal/usecase"
)

type contextKey string

const UserContextKey contextKey = "user"

type AuthMiddleware struct {
	authUc usecase.AuthUsecase
}

func NewAuthMiddleware(authUc usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		authUc: authUc,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "invalid authorization header format")
			return
		}

		claims, err := m.authUc.ValidateAccessToken(parts[1])
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards routes that only one role may call, e.g. officiant-only
// proposal creation. Must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if claims.Role != role && claims.Role != entity.UserRoleAdmin {
				respondError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext extracts the authenticated user's claims placed there by
// Authenticate.
func ClaimsFromContext(ctx context.Context) (*entity.TokenClaims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*entity.TokenClaims)
	return claims, ok
}
