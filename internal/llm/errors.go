package llm

import "errors"

// ErrMissingAPIKey is returned when no upstream credential is configured
var ErrMissingAPIKey = errors.New("TUTOR_API_KEY is not configured")
