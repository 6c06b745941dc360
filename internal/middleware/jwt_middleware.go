package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/kazimashinani/kazi-api/internal/platform/auth"
	"github.com/kazimashinani/kazi-api/internal/response"
	"github.com/kazimashinani/kazi-api/pkg/logger"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

// RequireAuth extracts the bearer token, verifies it, and attaches the
// claims to the request context. A missing credential is 401; a token that
// fails verification is 403. The middleware never touches the store.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				response.Unauthorized(w, "Missing authorization token")
				return
			}

			raw := strings.TrimPrefix(authz, "Bearer ")
			claims, err := auth.Parse(raw, secret)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					logger.DebugContext(r.Context(), "Rejected expired token")
				} else {
					logger.WarnContext(r.Context(), "Rejected invalid token")
				}
				response.Forbidden(w, "Invalid authorization token")
				return
			}

			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			ctx = context.WithValue(ctx, logger.UserIDKey, claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route on the authenticated subject's role. It must
// run after RequireAuth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := Claims(r)
			if claims == nil || claims.Role != role {
				response.Forbidden(w, role+" access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Claims returns the verified claims attached by RequireAuth, or nil.
func Claims(r *http.Request) *auth.Claims {
	v := r.Context().Value(CtxClaims)
	if v == nil {
		return nil
	}
	return v.(*auth.Claims)
}
