package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tair/favorites-api/pkg/auth"
)

type contextKey string

// Context keys for claims extracted from the bearer token.
const (
	UserIDKey    contextKey = "user_id"
	EmailKey     contextKey = "email"
	SuperuserKey contextKey = "is_superuser"
)

// AuthMiddleware validates the bearer access token and places its claims on
// the request context. Anonymous requests get 401.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "authentication_required", "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "invalid_token", "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateAccessToken(parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token", "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, SuperuserKey, claims.IsSuperuser)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware additionally requires the superuser flag.
func AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		isSuperuser, ok := r.Context().Value(SuperuserKey).(bool)
		if !ok || !isSuperuser {
			writeError(w, http.StatusForbidden, "forbidden", "Superuser access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, reason, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "reason": reason})
}
