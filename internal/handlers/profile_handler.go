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

// ProfileService is the interface that wraps student profiles and the per-session current user.
type ProfileService interface {
	// Method ListProfiles returns stored profiles, seeding the default ones when none are stored.
	ListProfiles(ctx context.Context) ([]models.StudentProfile, error)
	// Method AddProfile appends a new level 1 profile.
	//
	// An empty name returns services.ErrProfileNameRequired.
	AddProfile(ctx context.Context, name string) (*models.StudentProfile, error)
	// Method GetCurrentUser returns the user of a session or services.ErrCurrentUserNotFound.
	GetCurrentUser(ctx context.Context, sessionID string) (*models.CurrentUser, error)
	// Method SetCurrentUser signs a user in, replacing the previous one.
	SetCurrentUser(ctx context.Context, sessionID string, req *models.SetCurrentUserRequest) (*models.CurrentUser, error)
	// Method SignOut forgets the user of a session.
	SignOut(ctx context.Context, sessionID string) error
}

// ProfileHandler handles HTTP requests for profiles and sessions
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers profile routes on a router scoped to /api/v1
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Route("/profiles", func(r chi.Router) {
		r.Get("/", h.ListProfiles)
		r.Post("/", h.AddProfile)
	})
	r.Route("/session/{sessionID}/user", func(r chi.Router) {
		r.Get("/", h.GetCurrentUser)
		r.Put("/", h.SetCurrentUser)
		r.Delete("/", h.SignOut)
	})
}

// ListProfiles handles GET /api/v1/profiles
// @Summary List student profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} models.StudentProfile "Profiles"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.ListProfiles(r.Context())
	if err != nil {
		h.logger.Error("failed to list profiles", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}

	h.respondJSON(w, http.StatusOK, profiles)
}

// AddProfile handles POST /api/v1/profiles
// @Summary Add a student profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body models.CreateProfileRequest true "Profile name"
// @Success 201 {object} models.StudentProfile "Created profile"
// @Failure 400 {object} map[string]string "Bad request - name is required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profiles [post]
func (h *ProfileHandler) AddProfile(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfileRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.AddProfile(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrProfileNameRequired) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to add profile", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to add profile")
		return
	}

	h.respondJSON(w, http.StatusCreated, profile)
}

// GetCurrentUser handles GET /api/v1/session/{sessionID}/user
// @Summary Get signed-in user
// @Tags session
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.CurrentUser "Current user"
// @Failure 404 {object} map[string]string "No user signed in"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/{sessionID}/user [get]
func (h *ProfileHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	user, err := h.service.GetCurrentUser(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrCurrentUserNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to get current user", zap.String("sessionID", sessionID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get current user")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// SetCurrentUser handles PUT /api/v1/session/{sessionID}/user
// @Summary Sign a user in
// @Description Name and email are required; role defaults to student
// @Tags session
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body models.SetCurrentUserRequest true "Sign-in form"
// @Success 200 {object} models.CurrentUser "Signed-in user"
// @Failure 400 {object} map[string]string "Bad request - missing name, email or invalid role"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/{sessionID}/user [put]
func (h *ProfileHandler) SetCurrentUser(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req models.SetCurrentUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.SetCurrentUser(r.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNameAndEmailRequired) || errors.Is(err, services.ErrInvalidRole) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to set current user", zap.String("sessionID", sessionID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to set current user")
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// SignOut handles DELETE /api/v1/session/{sessionID}/user
// @Summary Sign out
// @Tags session
// @Param sessionID path string true "Session ID"
// @Success 204 "Signed out"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/{sessionID}/user [delete]
func (h *ProfileHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.service.SignOut(r.Context(), sessionID); err != nil {
		h.logger.Error("failed to sign out", zap.String("sessionID", sessionID), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to sign out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
