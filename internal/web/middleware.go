package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// middleware adds security headers, a request ID, access logging, and
// panic recovery to all routes. A panic is reported to the caller as
// HTTP 500 with the fault's message; the process keeps serving.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := "req_" + uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")

		logger := s.logger.With().Str("request_id", reqID).Logger()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Str("path", r.URL.Path).
					Interface("panic", rec).
					Msg("handler panicked")
				writeError(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()

		next.ServeHTTP(w, r)

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}
