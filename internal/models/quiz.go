package models

// Question is one multiple choice question
type Question struct {
	ID            int      `json:"id" yaml:"id"`
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"-" yaml:"correctAnswer"`
	Explanation   string   `json:"-" yaml:"explanation"`
}

// Quiz is a timed multiple choice test
type Quiz struct {
	ID        string     `json:"id" yaml:"id"`
	Subject   string     `json:"subject" yaml:"subject"`
	Chapter   string     `json:"chapter" yaml:"chapter"`
	TimeLimit int        `json:"timeLimit" yaml:"timeLimit"` // seconds
	Questions []Question `json:"questions" yaml:"questions"`
}

// QuizSubmission holds the chosen option per question, nil when unanswered
type QuizSubmission struct {
	Answers        []*int `json:"answers"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
}

// QuestionResult is the graded outcome of one question
type QuestionResult struct {
	QuestionID    int    `json:"questionId"`
	Selected      *int   `json:"selected"`
	CorrectAnswer int    `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// QuizResult is the graded quiz
type QuizResult struct {
	Score    int              `json:"score"`
	Total    int              `json:"total"`
	Percent  int              `json:"percent"`
	TimedOut bool             `json:"timedOut"`
	Results  []QuestionResult `json:"results"`
}
