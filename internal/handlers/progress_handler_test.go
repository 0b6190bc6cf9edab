package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/edututor/backend/internal/models"
	"github.com/edututor/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockProgressService is a mock implementation of ProgressService
type mockProgressService struct {
	state    *models.PlayerState
	progress *models.LessonProgress
	stats    *models.ProgressStats
	err      error

	lastAction string
	userID     string
	lessonID   string
	percent    float64
}

func (m *mockProgressService) act(action, userID, lessonID string) (*models.PlayerState, error) {
	m.lastAction = action
	m.userID = userID
	m.lessonID = lessonID
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func (m *mockProgressService) StartLesson(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	return m.act("start", userID, lessonID)
}

func (m *mockProgressService) NextStep(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	return m.act("next", userID, lessonID)
}

func (m *mockProgressService) PreviousStep(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	return m.act("previous", userID, lessonID)
}

func (m *mockProgressService) CompleteLesson(ctx context.Context, userID, lessonID string) (*models.PlayerState, error) {
	return m.act("complete", userID, lessonID)
}

func (m *mockProgressService) UpdateProgress(ctx context.Context, userID, lessonID string, percent float64) (*models.LessonProgress, error) {
	m.percent = percent
	if m.err != nil {
		return nil, m.err
	}
	return m.progress, nil
}

func (m *mockProgressService) GetProgress(ctx context.Context, userID, lessonID string) (*models.LessonProgress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.progress, nil
}

func (m *mockProgressService) GetStats(ctx context.Context, userID string) (*models.ProgressStats, error) {
	m.userID = userID
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func TestProgressHandler_Player(t *testing.T) {
	for _, action := range []string{"start", "next", "previous", "complete"} {
		t.Run(action, func(t *testing.T) {
			svc := &mockProgressService{state: &models.PlayerState{LessonID: "math-fractions-1", CurrentStep: 1, StepCount: 4, Progress: 50}}
			router := newTestRouter(NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)

			w := doRequest(t, router, http.MethodPost, "/api/v1/users/1/lessons/math-fractions-1/"+action, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, action, svc.lastAction)
			assert.Equal(t, "1", svc.userID)
			assert.Equal(t, "math-fractions-1", svc.lessonID)
			assert.Equal(t, 50.0, decodeBody[models.PlayerState](t, w).Progress)
		})
	}
}

func TestProgressHandler_Player_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "lesson not found", err: services.ErrLessonNotFound, expectedStatus: http.StatusNotFound},
		{name: "user id required", err: services.ErrUserIDRequired, expectedStatus: http.StatusBadRequest},
		{name: "repository error", err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProgressService{err: tt.err}
			router := newTestRouter(NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)

			w := doRequest(t, router, http.MethodPost, "/api/v1/users/1/lessons/unknown/next", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, decodeBody[map[string]string](t, w)["error"])
		})
	}
}

func TestProgressHandler_UpdateProgress(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
	}{
		{name: "success", body: `{"progress":42.5}`, expectedStatus: http.StatusOK},
		{name: "invalid body", body: `{"progress":`, expectedStatus: http.StatusBadRequest},
		{name: "out of range", body: `{"progress":120}`, err: services.ErrInvalidProgress, expectedStatus: http.StatusBadRequest},
		{name: "unknown lesson", body: `{"progress":10}`, err: services.ErrLessonNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProgressService{
				progress: &models.LessonProgress{UserID: "1", LessonID: "math-fractions-1", Progress: 42.5},
				err:      tt.err,
			}
			router := newTestRouter(NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)

			w := doRequest(t, router, http.MethodPut, "/api/v1/users/1/progress/math-fractions-1", strings.NewReader(tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, 42.5, svc.percent)
				assert.Equal(t, 42.5, decodeBody[models.LessonProgress](t, w).Progress)
			}
		})
	}
}

func TestProgressHandler_GetProgress(t *testing.T) {
	svc := &mockProgressService{progress: &models.LessonProgress{UserID: "1", LessonID: "math-fractions-1", Progress: 100, Completed: true}}
	router := newTestRouter(NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/1/progress/math-fractions-1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[models.LessonProgress](t, w).Completed)
}

func TestProgressHandler_GetStats(t *testing.T) {
	svc := &mockProgressService{stats: &models.ProgressStats{CompletedLessons: 1, TotalLessons: 3, CompletionRate: 33, MinutesSpent: 15}}
	router := newTestRouter(NewProgressHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodGet, "/api/v1/users/7/progress", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", svc.userID)
	stats := decodeBody[models.ProgressStats](t, w)
	assert.Equal(t, 33, stats.CompletionRate)
	assert.Equal(t, 15, stats.MinutesSpent)
}
