package middlewares

import (
	"net/http"
	"slices"
	"strings"
)

// CORSMiddleware creates a CORS middleware with the specified allowed origins.
// Requests to openPaths are allowed from any origin.
func CORSMiddleware(allowedOrigins []string, openPaths ...string) func(http.Handler) http.Handler {
	wildcard := []string{"*"}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origins := allowedOrigins
			if slices.Contains(openPaths, r.URL.Path) {
				origins = wildcard
			}
			allowAll := slices.Contains(origins, "*")

			origin := r.Header.Get("Origin")
			allowedOrigin := getAllowedOrigin(origin, origins)

			if allowedOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, X-Client-Info, Apikey, Content-Type, X-Request-ID")
			// Browsers reject credentials on a wildcard origin
			if !allowAll {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getAllowedOrigin returns "*" if all origins are allowed, the origin itself if it is listed,
// or an empty string otherwise
func getAllowedOrigin(requestOrigin string, allowedOrigins []string) string {
	if slices.Contains(allowedOrigins, "*") {
		return "*"
	}
	if requestOrigin == "" {
		return ""
	}

	for _, allowed := range allowedOrigins {
		if strings.EqualFold(requestOrigin, allowed) {
			return requestOrigin
		}
	}

	return ""
}
