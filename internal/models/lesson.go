package models

// StepType is the kind of content shown by a lesson step
type StepType string

const (
	StepTypeText        StepType = "text"
	StepTypeInteractive StepType = "interactive"
	StepTypeVideo       StepType = "video"
	StepTypeQuiz        StepType = "quiz"
)

// LessonStep is one page of a lesson in the player
type LessonStep struct {
	Type    StepType `json:"type" yaml:"type"`
	Title   string   `json:"title,omitempty" yaml:"title"`
	Body    string   `json:"body,omitempty" yaml:"body"`
	Prompt  string   `json:"prompt,omitempty" yaml:"prompt"`
	Options []string `json:"options,omitempty" yaml:"options"`
}

// Lesson represents a lesson in the catalog
type Lesson struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Subject     string       `json:"subject" yaml:"subject"`
	Level       int          `json:"level" yaml:"level"`
	Duration    int          `json:"duration" yaml:"duration"` // minutes
	Description string       `json:"description" yaml:"description"`
	Steps       []LessonStep `json:"steps" yaml:"steps"`
}

// LessonListItem represents a lesson in browser list responses
type LessonListItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Subject     string  `json:"subject"`
	Level       int     `json:"level"`
	Duration    int     `json:"duration"`
	Description string  `json:"description"`
	StepCount   int     `json:"stepCount"`
	Progress    float64 `json:"progress"`
	Completed   bool    `json:"completed"`
}

// SubjectAll is the browser filter value that matches every subject
const SubjectAll = "all"
