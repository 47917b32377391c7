// filepath: internal/api/handlers/middleware.go
package handlers

import (
	"context"
	"net/http"
	"strings"

	"reelhub/internal/logging"
	"reelhub/internal/models"
)

// Context keys set by the auth middleware.
const (
	ctxUser  = "user"
	ctxToken = "token"
)

// AuthMiddleware checks for a valid Bearer session token and attaches
// the resolved user to the request context.
func (h *Handlers) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			respondWithError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := h.Auth.CurrentUser(token)
		if err != nil {
			logging.Log.Warnf("AuthMiddleware: invalid session token: %v", err)
			respondWithError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), ctxUser, user)
		ctx = context.WithValue(ctx, ctxToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware requires the context user to be an admin.
func (h *Handlers) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(ctxUser).(*models.User)
		if !ok {
			respondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		if !user.IsAdmin {
			logging.Log.Warnf("AdminMiddleware: access denied for '%s' on %s", user.Username, r.URL.Path)
			respondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// contextUser returns the authenticated user attached by AuthMiddleware.
func contextUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(ctxUser).(*models.User)
	return user, ok
}

// contextActor returns the username for audit trails, or "anonymous".
func contextActor(r *http.Request) string {
	if user, ok := contextUser(r); ok {
		return user.Username
	}
	return "anonymous"
}
