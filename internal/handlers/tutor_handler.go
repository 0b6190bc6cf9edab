package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edututor/backend/internal/models"
	"github.com/edututor/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// TutorService is the interface that wraps the tutor proxy.
type TutorService interface {
	// Method Chat forwards the conversation upstream with the tutor system message prepended.
	//
	// Every failure is returned as *services.TutorError carrying the HTTP status and error kind.
	Chat(ctx context.Context, req *models.TutorRequest) (*models.TutorResponse, error)
}

// TutorHandler handles HTTP requests for the AI tutor
type TutorHandler struct {
	BaseHandler
	service TutorService
}

// NewTutorHandler creates a new tutor handler
func NewTutorHandler(svc TutorService, logger *zap.Logger) *TutorHandler {
	return &TutorHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers tutor routes on a router scoped to /api/v1
func (h *TutorHandler) RegisterRoutes(r chi.Router) {
	r.Post("/ai-tutor", h.Chat)
}

// Chat handles POST /api/v1/ai-tutor
// @Summary Ask the AI tutor
// @Description Forward a conversation to the upstream chat model and return its reply
// @Tags tutor
// @Accept json
// @Produce json
// @Param request body models.TutorRequest true "Conversation"
// @Success 200 {object} models.TutorResponse "Tutor reply"
// @Failure 402 {object} models.TutorErrorResponse "AI credits exhausted"
// @Failure 429 {object} models.TutorErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.TutorErrorResponse "Server error"
// @Router /ai-tutor [post]
func (h *TutorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.TutorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondTutorError(w, http.StatusInternalServerError, models.TutorErrorServer, "invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		var tutorErr *services.TutorError
		if errors.As(err, &tutorErr) {
			h.respondTutorError(w, tutorErr.Status, tutorErr.Kind, tutorErr.Message)
			return
		}
		h.logger.Error("tutor call failed", zap.Error(err))
		h.respondTutorError(w, http.StatusInternalServerError, models.TutorErrorServer, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *TutorHandler) respondTutorError(w http.ResponseWriter, status int, kind models.TutorErrorKind, message string) {
	h.respondJSON(w, status, models.TutorErrorResponse{Error: message, Type: kind})
}

// WriteTutorRejection answers a tutor request that middleware rejected before it reached Chat.
// Rate limiting keeps 429 with type rate_limit, any other rejection becomes a 500 server_error.
func WriteTutorRejection(w http.ResponseWriter, _ *http.Request, status int, message string) {
	kind := models.TutorErrorServer
	if status == http.StatusTooManyRequests {
		kind = models.TutorErrorRateLimit
		message = "Rate limit exceeded. Please wait a moment before trying again."
	} else {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.TutorErrorResponse{Error: message, Type: kind})
}
