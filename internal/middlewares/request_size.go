package middlewares

import (
	"net/http"
)

// RequestSizeLimitMiddleware limits request bodies to maxRequestSize bytes.
// Bodies with a declared length above the limit are rejected through writeError;
// undeclared ones fail on read past the limit.
func RequestSizeLimitMiddleware(maxRequestSize int64, writeError ErrorWriter) func(http.Handler) http.Handler {
	if writeError == nil {
		writeError = WriteJSONError
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
