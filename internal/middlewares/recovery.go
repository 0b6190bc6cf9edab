package middlewares

import (
	"net/http"

	"go.uber.org/zap"
)

// RecoveryMiddleware logs a panic with its stack and answers 500 through writeError
func RecoveryMiddleware(logger *zap.Logger, writeError ErrorWriter) func(http.Handler) http.Handler {
	if writeError == nil {
		writeError = WriteJSONError
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.Any("error", err),
						zap.Stack("stack"),
					)
					writeError(w, r, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
