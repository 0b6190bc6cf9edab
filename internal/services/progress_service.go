package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/edututor/backend/internal/models"
	"go.uber.org/zap"
)

// ProgressRepository is the interface that wraps methods for lesson_progress table data access
type ProgressRepository interface {
	// Get returns the progress of a user in a lesson, nil when the lesson was never started
	Get(ctx context.Context, userID, lessonID string) (*models.LessonProgress, error)
	// ListByUser returns every progress row of a user
	ListByUser(ctx context.Context, userID string) ([]models.LessonProgress, error)
	// Save stores step and progress, a completed row keeps progress 100
	Save(ctx context.Context, p *models.LessonProgress) error
	// Complete marks a lesson completed and reports whether it was the first completion
	Complete(ctx context.Context, userID, lessonID string, currentStep int, at time.Time) (bool, error)
}

// ActivityRecorder is notified when a user completes a lesson for the first time
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, profileID string, at time.Time) error
}

type progressService struct {
	repo     ProgressRepository
	catalog  LessonCatalog
	activity ActivityRecorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewProgressService creates a new progress service. activity may be nil.
func NewProgressService(repo ProgressRepository, catalog LessonCatalog, activity ActivityRecorder, logger *zap.Logger) *progressService {
	return &progressService{
		repo:     repo,
		catalog:  catalog,
		activity: activity,
		logger:   logger,
		now:      time.Now,
	}
}

// StartLesson opens the first step of a lesson
func (s *progressService) StartLesson(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	lesson, current, err := s.load(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	return s.moveTo(ctx, userID, lesson, current, 0)
}

// NextStep advances one step. On the last step the lesson is completed instead.
func (s *progressService) NextStep(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	lesson, current, err := s.load(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	step := savedStep(lesson, current)
	if step >= len(lesson.Steps)-1 {
		return s.complete(ctx, userID, lesson)
	}
	return s.moveTo(ctx, userID, lesson, current, step+1)
}

// PreviousStep goes back one step, never below the first one
func (s *progressService) PreviousStep(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	lesson, current, err := s.load(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	step := savedStep(lesson, current)
	if step > 0 {
		step--
	}
	return s.moveTo(ctx, userID, lesson, current, step)
}

// CompleteLesson sets progress to 100 and marks the lesson completed.
// Repeated calls succeed with FirstCompletion false.
func (s *progressService) CompleteLesson(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	lesson, _, err := s.load(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	return s.complete(ctx, userID, lesson)
}

// UpdateProgress sets the progress percentage of a lesson without moving the player
func (s *progressService) UpdateProgress(ctx context.Context, userID, lessonID string, percent float64) (*models.LessonProgress, error) {
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return nil, ErrInvalidProgress
	}

	_, current, err := s.load(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	p := &models.LessonProgress{UserID: userID, LessonID: lessonID, Progress: roundPercent(percent), UpdatedAt: s.now()}
	if current != nil {
		p.CurrentStep = current.CurrentStep
		p.Completed = current.Completed
		p.CompletedAt = current.CompletedAt
		if current.Completed {
			p.Progress = 100
		}
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	return p, nil
}

// GetProgress returns the stored progress of one lesson, zero values when never started
func (s *progressService) GetProgress(ctx context.Context, userID, lessonID string) (*models.LessonProgress, error) {
	_, current, err := s.load(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &models.LessonProgress{UserID: userID, LessonID: lessonID}, nil
	}
	return current, nil
}

// GetStats builds the progress dashboard of a user
func (s *progressService) GetStats(ctx context.Context, userID string) (*models.ProgressStats, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}

	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	byLesson := make(map[string]models.LessonProgress, len(rows))
	for _, r := range rows {
		byLesson[r.LessonID] = r
	}

	lessons := s.catalog.AllLessons()
	stats := &models.ProgressStats{
		TotalLessons: len(lessons),
		Lessons:      make([]models.LessonListItem, 0, len(lessons)),
	}
	for _, l := range lessons {
		item := toListItem(l)
		if p, ok := byLesson[l.ID]; ok {
			item.Progress = p.Progress
			item.Completed = p.Completed
		}
		if item.Completed {
			stats.CompletedLessons++
			stats.MinutesSpent += l.Duration
		}
		stats.Lessons = append(stats.Lessons, item)
	}
	if stats.TotalLessons > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedLessons) / float64(stats.TotalLessons) * 100))
	}

	return stats, nil
}

func (s *progressService) load(ctx context.Context, userID, lessonID string) (*models.Lesson, *models.LessonProgress, error) {
	if userID == "" {
		return nil, nil, ErrUserIDRequired
	}
	lesson, ok := s.catalog.Lesson(lessonID)
	if !ok {
		return nil, nil, ErrLessonNotFound
	}

	current, err := s.repo.Get(ctx, userID, lessonID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return lesson, current, nil
}

func (s *progressService) moveTo(ctx context.Context, userID string, lesson *models.Lesson, current *models.LessonProgress, step int) (*models.PlayerState, error) {
	p := &models.LessonProgress{
		UserID:      userID,
		LessonID:    lesson.ID,
		Progress:    stepProgress(step, len(lesson.Steps)),
		CurrentStep: step,
		UpdatedAt:   s.now(),
	}
	if current != nil && current.Completed {
		p.Progress = 100
		p.Completed = true
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	return &models.PlayerState{
		LessonID:    lesson.ID,
		CurrentStep: step,
		StepCount:   len(lesson.Steps),
		Step:        lesson.Steps[step],
		Progress:    p.Progress,
		Completed:   p.Completed,
	}, nil
}

func (s *progressService) complete(ctx context.Context, userID string, lesson *models.Lesson) (*models.PlayerState, error) {
	last := len(lesson.Steps) - 1
	now := s.now()

	first, err := s.repo.Complete(ctx, userID, lesson.ID, last, now)
	if err != nil {
		return nil, fmt.Errorf("failed to complete lesson: %w", err)
	}

	if first {
		s.logger.Info("lesson completed", zap.String("user_id", userID), zap.String("lesson_id", lesson.ID))
		if s.activity != nil {
			if err := s.activity.RecordActivity(ctx, userID, now); err != nil && !errors.Is(err, ErrProfileNotFound) {
				s.logger.Warn("failed to record activity", zap.String("user_id", userID), zap.Error(err))
			}
		}
	}

	return &models.PlayerState{
		LessonID:        lesson.ID,
		CurrentStep:     last,
		StepCount:       len(lesson.Steps),
		Step:            lesson.Steps[last],
		Progress:        100,
		Completed:       true,
		FirstCompletion: first,
	}, nil
}

// savedStep is the stored step of a lesson clamped to its current step count.
// The catalog may have been reloaded with fewer steps since the row was written.
func savedStep(lesson *models.Lesson, current *models.LessonProgress) int {
	if current == nil || current.CurrentStep < 0 {
		return 0
	}
	return min(current.CurrentStep, len(lesson.Steps)-1)
}

// stepProgress is the share of steps seen when standing on step
func stepProgress(step, count int) float64 {
	if count == 0 {
		return 0
	}
	return roundPercent(float64(step+1) / float64(count) * 100)
}

func roundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}
