package services

import (
	"context"
	"fmt"
	"math"

	"github.com/edututor/backend/internal/models"
	"go.uber.org/zap"
)

// QuizCatalog is the interface that wraps read access to authored quizzes
type QuizCatalog interface {
	Quiz(id string) (*models.Quiz, bool)
}

type quizService struct {
	catalog QuizCatalog
	logger  *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(catalog QuizCatalog, logger *zap.Logger) *quizService {
	return &quizService{
		catalog: catalog,
		logger:  logger,
	}
}

// GetQuiz returns a quiz. Answers and explanations are not serialized.
func (s *quizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	q, ok := s.catalog.Quiz(id)
	if !ok {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

// Submit grades a submission. Missing or nil answers count as unanswered.
// Submissions past the time limit are graded the same way and flagged as timed out.
func (s *quizService) Submit(ctx context.Context, id string, sub *models.QuizSubmission) (*models.QuizResult, error) {
	q, ok := s.catalog.Quiz(id)
	if !ok {
		return nil, ErrQuizNotFound
	}
	if sub.ElapsedSeconds < 0 {
		return nil, fmt.Errorf("%w: elapsed time is negative", ErrInvalidSubmission)
	}
	if len(sub.Answers) > len(q.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrInvalidSubmission, len(sub.Answers), len(q.Questions))
	}

	result := &models.QuizResult{
		Total:    len(q.Questions),
		TimedOut: q.TimeLimit > 0 && sub.ElapsedSeconds > q.TimeLimit,
		Results:  make([]models.QuestionResult, 0, len(q.Questions)),
	}

	for i, question := range q.Questions {
		var selected *int
		if i < len(sub.Answers) {
			selected = sub.Answers[i]
		}
		if selected != nil && (*selected < 0 || *selected >= len(question.Options)) {
			return nil, fmt.Errorf("%w: answer %d out of range for question %d", ErrInvalidSubmission, *selected, question.ID)
		}

		correct := selected != nil && *selected == question.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Results = append(result.Results, models.QuestionResult{
			QuestionID:    question.ID,
			Selected:      selected,
			CorrectAnswer: question.CorrectAnswer,
			Correct:       correct,
			Explanation:   question.Explanation,
		})
	}

	if result.Total > 0 {
		result.Percent = int(math.Round(float64(result.Score) / float64(result.Total) * 100))
	}

	s.logger.Debug("quiz graded", zap.String("quiz_id", id), zap.Int("score", result.Score), zap.Bool("timed_out", result.TimedOut))
	return result, nil
}
