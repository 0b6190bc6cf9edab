package models

import "encoding/json"

// ChatRole is the author of a conversation message
type ChatRole string

const (
	ChatRoleSystem    ChatRole = "system"
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one role-tagged message of a tutor conversation
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// TutorMode narrows the kind of help the tutor gives
type TutorMode string

const (
	TutorModeExplain  TutorMode = "explain"
	TutorModeHint     TutorMode = "hint"
	TutorModeSolve    TutorMode = "solve"
	TutorModeCheck    TutorMode = "check"
	TutorModePractice TutorMode = "practice"
)

// TutorRequest is the body accepted by the tutor endpoint
type TutorRequest struct {
	Messages         []ChatMessage `json:"messages"`
	IncludeWebSearch bool          `json:"includeWebSearch"`
	Mode             TutorMode     `json:"mode,omitempty"`
}

// TutorResponse is returned on a successful tutor call
type TutorResponse struct {
	Content string          `json:"content"`
	Model   string          `json:"model"`
	Usage   json.RawMessage `json:"usage,omitempty"`
}

// TutorErrorKind is the machine-readable class of a tutor failure
type TutorErrorKind string

const (
	TutorErrorRateLimit       TutorErrorKind = "rate_limit"
	TutorErrorPaymentRequired TutorErrorKind = "payment_required"
	TutorErrorServer          TutorErrorKind = "server_error"
)

// TutorErrorResponse is the body of a failed tutor call
type TutorErrorResponse struct {
	Error string         `json:"error"`
	Type  TutorErrorKind `json:"type"`
}
