package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Recover converts panics into the global 500 response shape
// {"message": ..., "error": {}}. Panic details are logged only when
// logErrors is set (ENABLE_GLOBAL_ERROR_LOGGING).
func Recover(logErrors bool, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logErrors {
						logger.Error().
							Interface("panic", rec).
							Bytes("stack", debug.Stack()).
							Msg("Global error handler")
					}
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
						"message": "Internal Server Error",
						"error":   map[string]any{},
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
