// Package llm contains the clients for the hosted chat-completion services used by the tutor
package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message represents a conversation message
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// Request is one chat-completion call
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response from a chat completion
type Response struct {
	Content string
	Model   string
	// Usage is the upstream token accounting, passed through untouched
	Usage json.RawMessage
}

// Completer is implemented by every upstream provider
type Completer interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// UpstreamError is returned when the provider answers with a non-success status
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("AI Gateway error: %d %s", e.StatusCode, e.Body)
}
