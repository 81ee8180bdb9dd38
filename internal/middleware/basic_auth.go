package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/security"
)

// contextKey is unexported to avoid context collisions
type contextKey string

const userContextKey = contextKey("currentUser")

// CurrentUser returns the authenticated user stored by BasicAuth, or nil if
// the request did not pass through it.
func CurrentUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// WithCurrentUser returns a context carrying the given user. Exposed for
// handler tests.
func WithCurrentUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// BasicAuth authenticates every request from scratch against the stored
// bcrypt hash: no sessions, no tokens, no lockout. The 401 message is the
// same for an unknown account and a wrong password so callers cannot
// enumerate registered email addresses.
func BasicAuth(users repository.UserRepository, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				logger.Warn().Msg("Missing or malformed Basic Authorization header")
				unauthorized(w)
				return
			}

			user, err := users.GetUserByEmail(r.Context(), email)
			if err != nil {
				logger.Error().Err(err).Msg("Failed to look up user for authentication")
				unauthorized(w)
				return
			}
			if user == nil {
				logger.Warn().Str("email", email).Msg("Authentication attempt for unknown email")
				unauthorized(w)
				return
			}

			if err := security.ComparePassword(password, user.PasswordHash); err != nil {
				logger.Warn().Str("email", email).Msg("Authentication attempt with wrong password")
				unauthorized(w)
				return
			}

			ctx := WithCurrentUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Authorization failed"}) //nolint:errcheck
}
