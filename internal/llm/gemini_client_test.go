package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGeminiContents(t *testing.T) {
	system, contents := toGeminiContents([]Message{
		{Role: "system", Content: "you are a tutor"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "explain gravity"},
	})

	require.NotNil(t, system)
	require.Len(t, system.Parts, 1)
	assert.Equal(t, "you are a tutor", system.Parts[0].Text)

	require.Len(t, contents, 3)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Equal(t, string(genai.RoleModel), contents[1].Role)
	assert.Equal(t, "explain gravity", contents[2].Parts[0].Text)
}

func TestToGeminiContents_NoSystem(t *testing.T) {
	system, contents := toGeminiContents([]Message{{Role: "user", Content: "hi"}})
	assert.Nil(t, system)
	assert.Len(t, contents, 1)
}

func TestFromGeminiError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "api error value",
			err:            genai.APIError{Code: 429, Message: "quota", Status: "RESOURCE_EXHAUSTED"},
			expectedStatus: 429,
		},
		{
			name:           "wrapped api error",
			err:            fmt.Errorf("call: %w", genai.APIError{Code: 402, Message: "billing"}),
			expectedStatus: 402,
		},
		{
			name: "transport error",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fromGeminiError(tt.err)
			var upstreamErr *UpstreamError
			if tt.expectedStatus == 0 {
				assert.False(t, errors.As(err, &upstreamErr))
				assert.ErrorContains(t, err, "GenAI generate failed")
				return
			}
			require.True(t, errors.As(err, &upstreamErr))
			assert.Equal(t, tt.expectedStatus, upstreamErr.StatusCode)
		})
	}
}
