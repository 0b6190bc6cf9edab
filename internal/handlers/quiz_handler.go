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

// QuizService is the interface that wraps multiple choice quiz methods.
type QuizService interface {
	// Method GetQuiz returns a quiz. Correct answers and explanations are not serialized.
	GetQuiz(ctx context.Context, id string) (*models.Quiz, error)
	// Method Submit grades the submitted answers.
	//
	// services.ErrQuizNotFound and services.ErrInvalidSubmission are returned for unknown quizzes and malformed answers.
	Submit(ctx context.Context, id string, sub *models.QuizSubmission) (*models.QuizResult, error)
}

// QuizHandler handles HTTP requests for quizzes
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers quiz routes on a router scoped to /api/v1
func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Route("/quizzes/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/submit", h.Submit)
	})
}

// Get handles GET /api/v1/quizzes/{id}
// @Summary Get quiz
// @Description Get quiz questions without their answers
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} models.Quiz "Quiz"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Router /quizzes/{id} [get]
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	quiz, err := h.service.GetQuiz(r.Context(), id)
	if err != nil {
		h.handleError(w, err, id)
		return
	}

	h.respondJSON(w, http.StatusOK, quiz)
}

// Submit handles POST /api/v1/quizzes/{id}/submit
// @Summary Submit quiz answers
// @Description Grade the answers, null marks an unanswered question
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body models.QuizSubmission true "Answers"
// @Success 200 {object} models.QuizResult "Graded quiz"
// @Failure 400 {object} map[string]string "Bad request - invalid submission"
// @Failure 404 {object} map[string]string "Quiz not found"
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var sub models.QuizSubmission
	if !h.decodeJSON(w, r, &sub) {
		return
	}

	result, err := h.service.Submit(r.Context(), id, &sub)
	if err != nil {
		h.handleError(w, err, id)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

func (h *QuizHandler) handleError(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidSubmission):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("quiz request failed", zap.String("quizID", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "quiz request failed")
	}
}
