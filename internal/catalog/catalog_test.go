package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Lessons, 3)
	assert.Equal(t, "math-fractions-1", c.Lessons[0].ID)
	assert.Len(t, c.Lessons[0].Steps, 2)
	assert.Equal(t, []string{"1/2", "1/3", "1/4", "2/3"}, c.Lessons[0].Steps[1].Options)

	quiz, ok := c.Quiz("general-knowledge-1")
	require.True(t, ok)
	assert.Equal(t, 600, quiz.TimeLimit)
	assert.Len(t, quiz.Questions, 5)
	assert.Equal(t, 2, quiz.Questions[0].CorrectAnswer)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		expectedError string
	}{
		{
			name: "valid",
			data: `
lessons:
  - id: a
    title: A
    steps:
      - type: text
`,
		},
		{
			name: "duplicate lesson id",
			data: `
lessons:
  - id: a
    steps: [{type: text}]
  - id: a
    steps: [{type: text}]
`,
			expectedError: "duplicate lesson id",
		},
		{
			name: "lesson without steps",
			data: `
lessons:
  - id: a
`,
			expectedError: "has no steps",
		},
		{
			name: "answer out of range",
			data: `
quizzes:
  - id: q
    questions:
      - id: 1
        options: ["x", "y"]
        correctAnswer: 2
`,
			expectedError: "correct answer out of range",
		},
		{
			name:          "malformed yaml",
			data:          "lessons: [",
			expectedError: "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.Nil(t, c)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestCatalog_Lesson(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	lesson, ok := c.Lesson("science-plants-1")
	assert.True(t, ok)
	assert.Equal(t, "How Plants Grow", lesson.Title)

	_, ok = c.Lesson("missing")
	assert.False(t, ok)
}
