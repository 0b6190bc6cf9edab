package middlewares

import (
	"encoding/json"
	"net/http"
)

// ErrorWriter writes the response for a request rejected before it reached a handler.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, status int, message string)

// WriteJSONError writes {"error": message} with the given status.
func WriteJSONError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// ErrorWriterByPath returns a writer that uses byPath[r.URL.Path] when registered and def otherwise.
// A nil def means WriteJSONError.
func ErrorWriterByPath(def ErrorWriter, byPath map[string]ErrorWriter) ErrorWriter {
	if def == nil {
		def = WriteJSONError
	}
	return func(w http.ResponseWriter, r *http.Request, status int, message string) {
		if write, ok := byPath[r.URL.Path]; ok {
			write(w, r, status, message)
			return
		}
		def(w, r, status, message)
	}
}
