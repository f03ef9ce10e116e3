// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/princearya108/foodlab-portal/internal/service"
)

type ctxKey string

const adminKey ctxKey = "admin"

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (*service.Claims, error)
}

// BearerAuth is a middleware that enforces bearer-token authentication.
//
// It expects an "Authorization: Bearer <token>" header, verifies the
// token, and stores the resulting claims in the request context so
// downstream handlers can identify the admin. Requests without a valid
// token receive a 401 with the standard response envelope.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}
			claims, err := verifier.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), claims)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": "invalid or expired token",
	})
}

// WithAdmin returns a context carrying the verified admin claims.
func WithAdmin(ctx context.Context, claims *service.Claims) context.Context {
	return context.WithValue(ctx, adminKey, claims)
}

// GetAdminFromContext extracts the verified admin claims from the
// request context. Returns nil if the request was not authenticated.
func GetAdminFromContext(ctx context.Context) *service.Claims {
	val := ctx.Value(adminKey)
	if c, ok := val.(*service.Claims); ok {
		return c
	}
	return nil
}
