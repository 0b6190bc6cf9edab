package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edututor/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProgressRepository is an in-memory ProgressRepository with the same completion rules as MySQL
type mockProgressRepository struct {
	rows        map[string]*models.LessonProgress
	getErr      error
	listErr     error
	saveErr     error
	completeErr error
	saves       int
}

func newMockProgressRepository() *mockProgressRepository {
	return &mockProgressRepository{rows: make(map[string]*models.LessonProgress)}
}

func (m *mockProgressRepository) Get(ctx context.Context, userID, lessonID string) (*models.LessonProgress, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.rows[userID+"/"+lessonID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockProgressRepository) ListByUser(ctx context.Context, userID string) ([]models.LessonProgress, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []models.LessonProgress
	for _, p := range m.rows {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProgressRepository) Save(ctx context.Context, p *models.LessonProgress) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	key := p.UserID + "/" + p.LessonID
	existing, ok := m.rows[key]
	if !ok {
		cp := *p
		cp.Completed = false
		m.rows[key] = &cp
		return nil
	}
	if !existing.Completed {
		existing.Progress = p.Progress
	}
	existing.CurrentStep = p.CurrentStep
	existing.UpdatedAt = p.UpdatedAt
	return nil
}

func (m *mockProgressRepository) Complete(ctx context.Context, userID, lessonID string, currentStep int, at time.Time) (bool, error) {
	if m.completeErr != nil {
		return false, m.completeErr
	}
	key := userID + "/" + lessonID
	existing, ok := m.rows[key]
	if ok && existing.Completed {
		return false, nil
	}
	completedAt := at
	m.rows[key] = &models.LessonProgress{
		UserID: userID, LessonID: lessonID, Progress: 100, CurrentStep: currentStep,
		Completed: true, CompletedAt: &completedAt, UpdatedAt: at,
	}
	return true, nil
}

// mockActivityRecorder records RecordActivity calls
type mockActivityRecorder struct {
	calls []string
	err   error
}

func (m *mockActivityRecorder) RecordActivity(ctx context.Context, profileID string, at time.Time) error {
	m.calls = append(m.calls, profileID)
	return m.err
}

func newTestProgressService(repo *mockProgressRepository, activity ActivityRecorder) *progressService {
	svc := NewProgressService(repo, &mockCatalog{lessons: testLessons()}, activity, zap.NewNop())
	fixed := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc
}

func TestNewProgressService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	repo := newMockProgressRepository()
	catalog := &mockCatalog{}

	svc := NewProgressService(repo, catalog, nil, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, repo, svc.repo)
	assert.Equal(t, catalog, svc.catalog)
	assert.Equal(t, logger, svc.logger)
}

func TestProgressService_StartLesson(t *testing.T) {
	repo := newMockProgressRepository()
	svc := newTestProgressService(repo, nil)

	state, err := svc.StartLesson(context.Background(), "u1", "math-fractions-1")
	require.NoError(t, err)

	assert.Equal(t, 0, state.CurrentStep)
	assert.Equal(t, 4, state.StepCount)
	assert.Equal(t, 25.0, state.Progress)
	assert.Equal(t, "What are Fractions?", state.Step.Title)
	assert.False(t, state.Completed)
	assert.Equal(t, 25.0, repo.rows["u1/math-fractions-1"].Progress)
}

func TestProgressService_StepNavigation(t *testing.T) {
	ctx := context.Background()
	repo := newMockProgressRepository()
	svc := newTestProgressService(repo, nil)

	_, err := svc.StartLesson(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)

	state, err := svc.NextStep(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Equal(t, 50.0, state.Progress)

	state, err = svc.NextStep(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	assert.Equal(t, 2, state.CurrentStep)
	assert.Equal(t, 75.0, state.Progress)

	state, err = svc.PreviousStep(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Equal(t, 50.0, state.Progress)

	state, err = svc.PreviousStep(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	state, err = svc.PreviousStep(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentStep)
	assert.Equal(t, 25.0, state.Progress)
}

func TestProgressService_StoredStepOutsideLesson(t *testing.T) {
	tests := []struct {
		name              string
		storedStep        int
		move              func(svc *progressService, ctx context.Context) (*models.PlayerState, error)
		expectedStep      int
		expectedProgress  float64
		expectedCompleted bool
	}{
		{
			name:       "previous from past the end",
			storedStep: 7,
			move: func(svc *progressService, ctx context.Context) (*models.PlayerState, error) {
				return svc.PreviousStep(ctx, "u1", "math-fractions-1")
			},
			expectedStep:     2,
			expectedProgress: 75,
		},
		{
			name:       "next from past the end completes",
			storedStep: 7,
			move: func(svc *progressService, ctx context.Context) (*models.PlayerState, error) {
				return svc.NextStep(ctx, "u1", "math-fractions-1")
			},
			expectedStep:      3,
			expectedProgress:  100,
			expectedCompleted: true,
		},
		{
			name:       "negative step",
			storedStep: -2,
			move: func(svc *progressService, ctx context.Context) (*models.PlayerState, error) {
				return svc.NextStep(ctx, "u1", "math-fractions-1")
			},
			expectedStep:     1,
			expectedProgress: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockProgressRepository()
			repo.rows["u1/math-fractions-1"] = &models.LessonProgress{
				UserID: "u1", LessonID: "math-fractions-1", Progress: 40, CurrentStep: tt.storedStep,
			}
			svc := newTestProgressService(repo, nil)

			state, err := tt.move(svc, context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStep, state.CurrentStep)
			assert.Equal(t, tt.expectedProgress, state.Progress)
			assert.Equal(t, tt.expectedCompleted, state.Completed)
			assert.Equal(t, 4, state.StepCount)
		})
	}
}

func TestProgressService_NextStep_CompletesOnLastStep(t *testing.T) {
	ctx := context.Background()
	repo := newMockProgressRepository()
	activity := &mockActivityRecorder{}
	svc := newTestProgressService(repo, activity)

	_, err := svc.StartLesson(ctx, "u1", "math-geometry-1")
	require.NoError(t, err)

	state, err := svc.NextStep(ctx, "u1", "math-geometry-1")
	require.NoError(t, err)
	assert.Equal(t, 1, state.CurrentStep)
	assert.False(t, state.Completed)

	state, err = svc.NextStep(ctx, "u1", "math-geometry-1")
	require.NoError(t, err)
	assert.True(t, state.Completed)
	assert.True(t, state.FirstCompletion)
	assert.Equal(t, 100.0, state.Progress)

	stored := repo.rows["u1/math-geometry-1"]
	assert.Equal(t, 100.0, stored.Progress)
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.CompletedAt)

	state, err = svc.NextStep(ctx, "u1", "math-geometry-1")
	require.NoError(t, err)
	assert.True(t, state.Completed)
	assert.False(t, state.FirstCompletion)
	assert.Equal(t, []string{"u1"}, activity.calls)
}

func TestProgressService_CompleteLesson_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := newMockProgressRepository()
	activity := &mockActivityRecorder{}
	svc := newTestProgressService(repo, activity)

	first, err := svc.CompleteLesson(ctx, "u1", "science-plants-1")
	require.NoError(t, err)
	assert.True(t, first.FirstCompletion)
	completedAt := *repo.rows["u1/science-plants-1"].CompletedAt

	svc.now = func() time.Time { return completedAt.Add(time.Hour) }
	second, err := svc.CompleteLesson(ctx, "u1", "science-plants-1")
	require.NoError(t, err)
	assert.False(t, second.FirstCompletion)
	assert.True(t, second.Completed)
	assert.Equal(t, 100.0, second.Progress)

	assert.Equal(t, completedAt, *repo.rows["u1/science-plants-1"].CompletedAt)
	assert.Len(t, activity.calls, 1)
}

func TestProgressService_CompletedProgressIsNeverLowered(t *testing.T) {
	ctx := context.Background()
	repo := newMockProgressRepository()
	svc := newTestProgressService(repo, nil)

	_, err := svc.CompleteLesson(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)

	state, err := svc.StartLesson(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	assert.Equal(t, 0, state.CurrentStep)
	assert.Equal(t, 100.0, state.Progress)
	assert.True(t, state.Completed)

	p, err := svc.UpdateProgress(ctx, "u1", "math-fractions-1", 10)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Progress)
	assert.Equal(t, 100.0, repo.rows["u1/math-fractions-1"].Progress)
}

func TestProgressService_CompleteLesson_ActivityErrorIsNotFatal(t *testing.T) {
	repo := newMockProgressRepository()
	svc := newTestProgressService(repo, &mockActivityRecorder{err: errors.New("redis down")})

	state, err := svc.CompleteLesson(context.Background(), "u1", "science-plants-1")
	require.NoError(t, err)
	assert.True(t, state.FirstCompletion)
}

func TestProgressService_UpdateProgress(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		lessonID      string
		percent       float64
		setup         func(*mockProgressRepository)
		expectedError error
		expected      float64
	}{
		{name: "success", userID: "u1", lessonID: "math-fractions-1", percent: 42.5, expected: 42.5},
		{name: "zero", userID: "u1", lessonID: "math-fractions-1", percent: 0, expected: 0},
		{name: "hundred", userID: "u1", lessonID: "math-fractions-1", percent: 100, expected: 100},
		{name: "negative", userID: "u1", lessonID: "math-fractions-1", percent: -1, expectedError: ErrInvalidProgress},
		{name: "above hundred", userID: "u1", lessonID: "math-fractions-1", percent: 100.5, expectedError: ErrInvalidProgress},
		{name: "unknown lesson", userID: "u1", lessonID: "missing", percent: 10, expectedError: ErrLessonNotFound},
		{name: "missing user", userID: "", lessonID: "math-fractions-1", percent: 10, expectedError: ErrUserIDRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockProgressRepository()
			svc := newTestProgressService(repo, nil)

			p, err := svc.UpdateProgress(context.Background(), tt.userID, tt.lessonID, tt.percent)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Progress)
			assert.False(t, p.Completed)
		})
	}
}

func TestProgressService_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mockProgressRepository)
		call  func(*progressService) error
	}{
		{
			name:  "get error",
			setup: func(m *mockProgressRepository) { m.getErr = errors.New("database error") },
			call: func(s *progressService) error {
				_, err := s.StartLesson(context.Background(), "u1", "math-fractions-1")
				return err
			},
		},
		{
			name:  "save error",
			setup: func(m *mockProgressRepository) { m.saveErr = errors.New("database error") },
			call: func(s *progressService) error {
				_, err := s.NextStep(context.Background(), "u1", "math-fractions-1")
				return err
			},
		},
		{
			name:  "complete error",
			setup: func(m *mockProgressRepository) { m.completeErr = errors.New("database error") },
			call: func(s *progressService) error {
				_, err := s.CompleteLesson(context.Background(), "u1", "math-fractions-1")
				return err
			},
		},
		{
			name:  "list error",
			setup: func(m *mockProgressRepository) { m.listErr = errors.New("database error") },
			call: func(s *progressService) error {
				_, err := s.GetStats(context.Background(), "u1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockProgressRepository()
			tt.setup(repo)
			svc := newTestProgressService(repo, nil)

			err := tt.call(svc)
			assert.Error(t, err)
		})
	}
}

func TestProgressService_GetStats(t *testing.T) {
	ctx := context.Background()
	repo := newMockProgressRepository()
	svc := newTestProgressService(repo, nil)

	_, err := svc.CompleteLesson(ctx, "u1", "math-fractions-1")
	require.NoError(t, err)
	_, err = svc.CompleteLesson(ctx, "u1", "science-plants-1")
	require.NoError(t, err)
	_, err = svc.StartLesson(ctx, "u1", "math-geometry-1")
	require.NoError(t, err)
	_, err = svc.CompleteLesson(ctx, "u2", "math-geometry-1")
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CompletedLessons)
	assert.Equal(t, 3, stats.TotalLessons)
	assert.Equal(t, 67, stats.CompletionRate)
	assert.Equal(t, 35, stats.MinutesSpent)
	require.Len(t, stats.Lessons, 3)
	assert.Equal(t, 50.0, stats.Lessons[2].Progress)
	assert.False(t, stats.Lessons[2].Completed)
}

func TestProgressService_GetProgress(t *testing.T) {
	repo := newMockProgressRepository()
	svc := newTestProgressService(repo, nil)

	p, err := svc.GetProgress(context.Background(), "u1", "math-fractions-1")
	require.NoError(t, err)
	assert.Equal(t, "math-fractions-1", p.LessonID)
	assert.Zero(t, p.Progress)
}

func TestStepProgress(t *testing.T) {
	assert.Equal(t, 33.33, stepProgress(0, 3))
	assert.Equal(t, 66.67, stepProgress(1, 3))
	assert.Equal(t, 100.0, stepProgress(2, 3))
	assert.Equal(t, 0.0, stepProgress(0, 0))
}
