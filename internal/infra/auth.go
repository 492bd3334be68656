package infra

import (
	"context"
	"net/http"
	"strings"

	"github.com/s21platform/doodle-sync/internal/config"
)

// AuthInterceptorHTTP admits only requests carrying a session token issued to
// the user this process syncs for.
func AuthInterceptorHTTP(next http.Handler, sessions SessionValidator, sessionUserID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := sessions.ValidateSessionToken(token)
		if err != nil {
			http.Error(w, "invalid session token", http.StatusUnauthorized)
			return
		}

		if claims.Subject != sessionUserID {
			http.Error(w, "token belongs to another user", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
