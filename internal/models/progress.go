package models

import "time"

// LessonProgress represents a user's progress through one lesson
type LessonProgress struct {
	UserID      string     `json:"userId"`
	LessonID    string     `json:"lessonId"`
	Progress    float64    `json:"progress"`
	CurrentStep int        `json:"currentStep"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PlayerState is returned by lesson player operations
type PlayerState struct {
	LessonID        string     `json:"lessonId"`
	CurrentStep     int        `json:"currentStep"`
	StepCount       int        `json:"stepCount"`
	Step            LessonStep `json:"step"`
	Progress        float64    `json:"progress"`
	Completed       bool       `json:"completed"`
	FirstCompletion bool       `json:"firstCompletion,omitempty"`
}

// ProgressStats is the dashboard summary of a user's progress
type ProgressStats struct {
	CompletedLessons int              `json:"completedLessons"`
	TotalLessons     int              `json:"totalLessons"`
	CompletionRate   int              `json:"completionRate"`
	MinutesSpent     int              `json:"minutesSpent"`
	Lessons          []LessonListItem `json:"lessons"`
}

// UpdateProgressRequest represents a request to set a lesson progress percentage
type UpdateProgressRequest struct {
	Progress float64 `json:"progress"`
}
