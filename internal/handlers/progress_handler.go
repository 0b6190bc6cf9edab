package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/edututor/backend/internal/models"
	"github.com/edututor/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProgressService is the interface that wraps the lesson player and progress tracking.
type ProgressService interface {
	// Method StartLesson opens a lesson at its first step.
	StartLesson(ctx context.Context, userID, lessonID string) (*models.PlayerState, error)
	// Method NextStep advances one step, completing the lesson when called on the last step.
	NextStep(ctx context.Context, userID, lessonID string) (*models.PlayerState, error)
	// Method PreviousStep goes back one step, never below the first one.
	PreviousStep(ctx context.Context, userID, lessonID string) (*models.PlayerState, error)
	// Method CompleteLesson marks the lesson completed. Repeated calls report FirstCompletion=false.
	CompleteLesson(ctx context.Context, userID, lessonID string) (*models.PlayerState, error)
	// Method UpdateProgress stores a progress percentage.
	//
	// Values outside 0..100 return services.ErrInvalidProgress.
	UpdateProgress(ctx context.Context, userID, lessonID string, percent float64) (*models.LessonProgress, error)
	// Method GetProgress returns the stored progress, zero valued when the lesson was never opened.
	GetProgress(ctx context.Context, userID, lessonID string) (*models.LessonProgress, error)
	// Method GetStats returns the dashboard summary of a user.
	GetStats(ctx context.Context, userID string) (*models.ProgressStats, error)
}

// ProgressHandler handles HTTP requests for the lesson player and dashboard
type ProgressHandler struct {
	BaseHandler
	service ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(svc ProgressService, logger *zap.Logger) *ProgressHandler {
	return &ProgressHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers progress routes on a router scoped to /api/v1
func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/progress", h.GetStats)
		r.Get("/progress/{lessonID}", h.GetProgress)
		r.Put("/progress/{lessonID}", h.UpdateProgress)
		r.Route("/lessons/{lessonID}", func(r chi.Router) {
			r.Post("/start", h.player(h.service.StartLesson))
			r.Post("/next", h.player(h.service.NextStep))
			r.Post("/previous", h.player(h.service.PreviousStep))
			r.Post("/complete", h.player(h.service.CompleteLesson))
		})
	})
}

type playerAction func(ctx context.Context, userID, lessonID string) (*models.PlayerState, error)

// player handles POST /api/v1/users/{userID}/lessons/{lessonID}/{start|next|previous|complete}
// @Summary Lesson player navigation
// @Description Start a lesson, move to the next or previous step, or complete it
// @Tags progress
// @Produce json
// @Param userID path string true "User ID"
// @Param lessonID path string true "Lesson ID"
// @Success 200 {object} models.PlayerState "Player state after the action"
// @Failure 400 {object} map[string]string "Bad request - user id is required"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userID}/lessons/{lessonID}/start [post]
// @Router /users/{userID}/lessons/{lessonID}/next [post]
// @Router /users/{userID}/lessons/{lessonID}/previous [post]
// @Router /users/{userID}/lessons/{lessonID}/complete [post]
func (h *ProgressHandler) player(action playerAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		lessonID := chi.URLParam(r, "lessonID")

		state, err := action(r.Context(), userID, lessonID)
		if err != nil {
			h.handleError(w, err, "failed to update lesson player", userID, lessonID)
			return
		}

		h.respondJSON(w, http.StatusOK, state)
	}
}

// GetStats handles GET /api/v1/users/{userID}/progress
// @Summary Get progress dashboard
// @Description Get completed lessons, completion rate, time spent and per-lesson progress
// @Tags progress
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.ProgressStats "Dashboard statistics"
// @Failure 400 {object} map[string]string "Bad request - user id is required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userID}/progress [get]
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	stats, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		h.handleError(w, err, "failed to get progress stats", userID, "")
		return
	}

	h.respondJSON(w, http.StatusOK, stats)
}

// GetProgress handles GET /api/v1/users/{userID}/progress/{lessonID}
// @Summary Get lesson progress
// @Tags progress
// @Produce json
// @Param userID path string true "User ID"
// @Param lessonID path string true "Lesson ID"
// @Success 200 {object} models.LessonProgress "Lesson progress"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userID}/progress/{lessonID} [get]
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	lessonID := chi.URLParam(r, "lessonID")

	progress, err := h.service.GetProgress(r.Context(), userID, lessonID)
	if err != nil {
		h.handleError(w, err, "failed to get lesson progress", userID, lessonID)
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

// UpdateProgress handles PUT /api/v1/users/{userID}/progress/{lessonID}
// @Summary Update lesson progress
// @Tags progress
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param lessonID path string true "Lesson ID"
// @Param request body models.UpdateProgressRequest true "Progress percentage"
// @Success 200 {object} models.LessonProgress "Stored progress"
// @Failure 400 {object} map[string]string "Bad request - invalid body or progress out of range"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userID}/progress/{lessonID} [put]
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	lessonID := chi.URLParam(r, "lessonID")

	var req models.UpdateProgressRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	progress, err := h.service.UpdateProgress(r.Context(), userID, lessonID, req.Progress)
	if err != nil {
		h.handleError(w, err, "failed to update lesson progress", userID, lessonID)
		return
	}

	h.respondJSON(w, http.StatusOK, progress)
}

func (h *ProgressHandler) handleError(w http.ResponseWriter, err error, msg, userID, lessonID string) {
	switch {
	case errors.Is(err, services.ErrLessonNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidProgress), errors.Is(err, services.ErrUserIDRequired):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(msg, zap.String("userID", userID), zap.String("lessonID", lessonID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, msg)
	}
}
