package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/edututor/backend/internal/llm"
	"github.com/edututor/backend/internal/models"
	"go.uber.org/zap"
)

const (
	tutorTemperature = 0.7
	tutorMaxTokens   = 2000
)

const tutorSystemPrompt = `You are an expert AI tutor with deep knowledge across all subjects. Your goal is to help students learn effectively by:

1. Breaking down complex concepts into simple, understandable explanations
2. Providing step-by-step solutions with clear reasoning
3. Encouraging critical thinking by asking guiding questions
4. Using real-world examples and analogies
5. Adapting your teaching style to the student's level
6. Being patient, encouraging, and supportive
7. Citing sources when using web research

When solving problems:
- Show each step clearly
- Explain the reasoning behind each step
- Point out common mistakes to avoid
- Provide practice suggestions

When explaining concepts:
- Start with the big picture
- Use simple language first, then introduce technical terms
- Use examples and analogies
- Check for understanding
`

const (
	webSearchInstruction = "You have access to current web information. Use it to provide accurate, up-to-date facts and real-world examples."
	closingInstruction   = "Be conversational but professional. Format your responses with clear sections when appropriate."
)

var modeInstructions = map[models.TutorMode]string{
	models.TutorModeExplain:  "The student wants an explanation. Explain the concept step by step, starting with the big picture.",
	models.TutorModeHint:     "The student wants a hint. Give one helpful hint without revealing the full answer, then invite them to try again.",
	models.TutorModeSolve:    "The student wants a step-by-step solution. Solve the problem showing and justifying every step.",
	models.TutorModeCheck:    "The student wants their answer checked. Say whether it is correct and point out any mistake precisely.",
	models.TutorModePractice: "The student wants practice. Give one practice question suited to their level and wait for their answer.",
}

// TutorError is a tutor failure classified for the client
type TutorError struct {
	Kind    models.TutorErrorKind
	Status  int
	Message string
	Err     error
}

func (e *TutorError) Error() string {
	return e.Message
}

func (e *TutorError) Unwrap() error {
	return e.Err
}

type tutorService struct {
	client llm.Completer
	logger *zap.Logger
}

// NewTutorService creates a new tutor service
func NewTutorService(client llm.Completer, logger *zap.Logger) *tutorService {
	return &tutorService{
		client: client,
		logger: logger,
	}
}

// Chat forwards the conversation with one system message in front.
// Every failure is returned as *TutorError.
func (s *tutorService) Chat(ctx context.Context, req *models.TutorRequest) (*models.TutorResponse, error) {
	if req == nil {
		return nil, serverError(errors.New("request body is required"))
	}

	messages, err := buildMessages(req)
	if err != nil {
		return nil, serverError(err)
	}

	s.logger.Info("AI tutor request received",
		zap.Int("message_count", len(req.Messages)),
		zap.Bool("include_web_search", req.IncludeWebSearch),
		zap.String("mode", string(req.Mode)),
	)

	resp, err := s.client.Complete(ctx, llm.Request{
		Messages:    messages,
		Temperature: tutorTemperature,
		MaxTokens:   tutorMaxTokens,
	})
	if err != nil {
		tutorErr := classify(err)
		s.logger.Error("AI tutor request failed", zap.String("type", string(tutorErr.Kind)), zap.Error(err))
		return nil, tutorErr
	}

	return &models.TutorResponse{
		Content: resp.Content,
		Model:   resp.Model,
		Usage:   resp.Usage,
	}, nil
}

// SystemPrompt returns the system message for the given options
func SystemPrompt(includeWebSearch bool, mode models.TutorMode) string {
	var b strings.Builder
	b.WriteString(tutorSystemPrompt)
	b.WriteString("\n")
	if includeWebSearch {
		b.WriteString(webSearchInstruction)
		b.WriteString("\n\n")
	}
	if instruction, ok := modeInstructions[mode]; ok {
		b.WriteString(instruction)
		b.WriteString("\n\n")
	}
	b.WriteString(closingInstruction)
	return b.String()
}

func buildMessages(req *models.TutorRequest) ([]llm.Message, error) {
	if req.Mode != "" {
		if _, ok := modeInstructions[req.Mode]; !ok {
			return nil, fmt.Errorf("invalid mode: %q", req.Mode)
		}
	}

	messages := make([]llm.Message, 0, len(req.Messages)+1)
	messages = append(messages, llm.Message{
		Role:    string(models.ChatRoleSystem),
		Content: SystemPrompt(req.IncludeWebSearch, req.Mode),
	})
	for i, m := range req.Messages {
		if m.Role != models.ChatRoleUser && m.Role != models.ChatRoleAssistant {
			return nil, fmt.Errorf("message %d: invalid role %q", i, m.Role)
		}
		messages = append(messages, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	return messages, nil
}

// classify maps an upstream failure to the error kind shown to the client
func classify(err error) *TutorError {
	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.StatusCode {
		case http.StatusTooManyRequests:
			return &TutorError{
				Kind:    models.TutorErrorRateLimit,
				Status:  http.StatusTooManyRequests,
				Message: "Rate limit exceeded. Please wait a moment before trying again.",
				Err:     err,
			}
		case http.StatusPaymentRequired:
			return &TutorError{
				Kind:    models.TutorErrorPaymentRequired,
				Status:  http.StatusPaymentRequired,
				Message: "AI credits exhausted. Please contact support.",
				Err:     err,
			}
		}
	}
	return serverError(err)
}

func serverError(err error) *TutorError {
	return &TutorError{
		Kind:    models.TutorErrorServer,
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
		Err:     err,
	}
}
