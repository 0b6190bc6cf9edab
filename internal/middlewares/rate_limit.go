package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimitMiddleware limits requests per client IP and answers rejected ones through writeError.
func RateLimitMiddleware(requestLimit int, window time.Duration, writeError ErrorWriter) func(http.Handler) http.Handler {
	if writeError == nil {
		writeError = WriteJSONError
	}
	return httprate.Limit(requestLimit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeError(w, r, http.StatusTooManyRequests, "too many requests")
		}),
		httprate.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, r, http.StatusInternalServerError, "rate limiter unavailable")
		}),
	)
}
