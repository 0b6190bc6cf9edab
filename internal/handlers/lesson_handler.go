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

// LessonService is the interface that wraps methods for the lesson browser.
type LessonService interface {
	// Method List returns catalog lessons filtered by "search" (case-insensitive, title and description)
	// and by "subject". Empty subject or models.SubjectAll disables the subject filter.
	List(ctx context.Context, search, subject string) []models.LessonListItem
	// Method Subjects returns models.SubjectAll followed by distinct subjects in catalog order.
	Subjects(ctx context.Context) []string
	// Method Get returns a lesson with its steps.
	//
	// If the lesson is not in the catalog, services.ErrLessonNotFound is returned.
	Get(ctx context.Context, id string) (*models.Lesson, error)
}

// LessonHandler handles HTTP requests for the lesson browser
type LessonHandler struct {
	BaseHandler
	service LessonService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(svc LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers lesson routes on a router scoped to /api/v1
func (h *LessonHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/subjects", h.Subjects)
		r.Get("/{id}", h.Get)
	})
}

// List handles GET /api/v1/lessons
// @Summary List lessons
// @Description Browse the lesson catalog with optional search and subject filter
// @Tags lessons
// @Produce json
// @Param search query string false "Case-insensitive text matched against title and description"
// @Param subject query string false "Subject filter, all by default"
// @Success 200 {array} models.LessonListItem "Matching lessons"
// @Router /lessons [get]
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	subject := r.URL.Query().Get("subject")

	h.respondJSON(w, http.StatusOK, h.service.List(r.Context(), search, subject))
}

// Subjects handles GET /api/v1/lessons/subjects
// @Summary List subjects
// @Description Get the subject filter values, starting with "all"
// @Tags lessons
// @Produce json
// @Success 200 {array} string "Subjects"
// @Router /lessons/subjects [get]
func (h *LessonHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Subjects(r.Context()))
}

// Get handles GET /api/v1/lessons/{id}
// @Summary Get lesson
// @Description Get a lesson with all of its content steps
// @Tags lessons
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson "Lesson"
// @Failure 404 {object} map[string]string "Lesson not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lesson, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLessonNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to get lesson", zap.String("lessonID", id), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get lesson")
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}
