package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API directly through the genai SDK
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client. baseURL may be empty to use the public endpoint.
func NewGeminiClient(ctx context.Context, apiKey, baseURL, model string, httpClient *http.Client) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the conversation to Gemini, the system message becomes the system instruction
func (c *GeminiClient) Complete(ctx context.Context, req Request) (*Response, error) {
	system, contents := toGeminiContents(req.Messages)

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if system != nil {
		config.SystemInstruction = system
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fromGeminiError(err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("no completion returned")
	}

	var usage json.RawMessage
	if result.UsageMetadata != nil {
		usage, _ = json.Marshal(map[string]int32{
			"prompt_tokens":     result.UsageMetadata.PromptTokenCount,
			"completion_tokens": result.UsageMetadata.CandidatesTokenCount,
			"total_tokens":      result.UsageMetadata.TotalTokenCount,
		})
	}

	model := result.ModelVersion
	if model == "" {
		model = c.model
	}

	return &Response{Content: text, Model: model, Usage: usage}, nil
}

// toGeminiContents splits system messages out and maps assistant turns to the model role
func toGeminiContents(messages []Message) (*genai.Content, []*genai.Content) {
	var system *genai.Content
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			if system == nil {
				system = &genai.Content{}
			}
			system.Parts = append(system.Parts, &genai.Part{Text: m.Content})
		case "assistant":
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return system, contents
}

// fromGeminiError turns SDK API errors into UpstreamError so status mapping is provider independent
func fromGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &UpstreamError{StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	return fmt.Errorf("GenAI generate failed: %w", err)
}
