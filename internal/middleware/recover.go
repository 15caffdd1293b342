package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/lumengallery/lumen-api/internal/pkg/response"
)

// Recover is a middleware that recovers from panics. A page-level failure is
// the only user-visible error surface in the system; everything else
// degrades to fallbacks.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("stack", string(debug.Stack())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", GetRequestID(r.Context())).
					Msg("Panic recovered")

				response.InternalError(w, "An unexpected error occurred")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
