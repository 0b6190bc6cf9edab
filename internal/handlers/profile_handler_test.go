package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/edututor/backend/internal/models"
	"github.com/edututor/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockProfileService is a mock implementation of ProfileService
type mockProfileService struct {
	profiles []models.StudentProfile
	profile  *models.StudentProfile
	user     *models.CurrentUser
	err      error

	name      string
	sessionID string
	request   *models.SetCurrentUserRequest
	signedOut bool
}

func (m *mockProfileService) ListProfiles(ctx context.Context) ([]models.StudentProfile, error) {
	return m.profiles, m.err
}

func (m *mockProfileService) AddProfile(ctx context.Context, name string) (*models.StudentProfile, error) {
	m.name = name
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func (m *mockProfileService) GetCurrentUser(ctx context.Context, sessionID string) (*models.CurrentUser, error) {
	m.sessionID = sessionID
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockProfileService) SetCurrentUser(ctx context.Context, sessionID string, req *models.SetCurrentUserRequest) (*models.CurrentUser, error) {
	m.sessionID = sessionID
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockProfileService) SignOut(ctx context.Context, sessionID string) error {
	m.sessionID = sessionID
	m.signedOut = m.err == nil
	return m.err
}

func TestProfileHandler_ListProfiles(t *testing.T) {
	svc := &mockProfileService{profiles: []models.StudentProfile{{ID: "1", Name: "Alex"}, {ID: "2", Name: "Maria"}}}
	router := newTestRouter(NewProfileHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodGet, "/api/v1/profiles", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[[]models.StudentProfile](t, w), 2)

	svc.err = assert.AnError
	w = doRequest(t, router, http.MethodGet, "/api/v1/profiles", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProfileHandler_AddProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
	}{
		{name: "success", body: `{"name":"Sam"}`, expectedStatus: http.StatusCreated},
		{name: "invalid body", body: `name=Sam`, expectedStatus: http.StatusBadRequest},
		{name: "empty name", body: `{"name":" "}`, err: services.ErrProfileNameRequired, expectedStatus: http.StatusBadRequest},
		{name: "store error", body: `{"name":"Sam"}`, err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProfileService{profile: &models.StudentProfile{ID: "4", Name: "Sam", Level: 1}, err: tt.err}
			router := newTestRouter(NewProfileHandler(svc, zap.NewNop()).RegisterRoutes)

			w := doRequest(t, router, http.MethodPost, "/api/v1/profiles", strings.NewReader(tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Equal(t, "Sam", svc.name)
				assert.Equal(t, 1, decodeBody[models.StudentProfile](t, w).Level)
			}
		})
	}
}

func TestProfileHandler_GetCurrentUser(t *testing.T) {
	svc := &mockProfileService{user: &models.CurrentUser{ID: "u1", Name: "Jane", Role: models.RoleTeacher}}
	router := newTestRouter(NewProfileHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodGet, "/api/v1/session/abc/user", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", svc.sessionID)
	assert.Equal(t, models.RoleTeacher, decodeBody[models.CurrentUser](t, w).Role)

	svc.err = services.ErrCurrentUserNotFound
	w = doRequest(t, router, http.MethodGet, "/api/v1/session/abc/user", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileHandler_SetCurrentUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		err            error
		expectedStatus int
	}{
		{name: "success", body: `{"name":"Jane","email":"jane@example.com","role":"teacher"}`, expectedStatus: http.StatusOK},
		{name: "missing email", body: `{"name":"Jane"}`, err: services.ErrNameAndEmailRequired, expectedStatus: http.StatusBadRequest},
		{name: "invalid role", body: `{"name":"Jane","email":"jane@example.com","role":"root"}`, err: services.ErrInvalidRole, expectedStatus: http.StatusBadRequest},
		{name: "store error", body: `{"name":"Jane","email":"jane@example.com"}`, err: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockProfileService{user: &models.CurrentUser{ID: "u1", Name: "Jane"}, err: tt.err}
			router := newTestRouter(NewProfileHandler(svc, zap.NewNop()).RegisterRoutes)

			w := doRequest(t, router, http.MethodPut, "/api/v1/session/abc/user", strings.NewReader(tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			require.NotNil(t, svc.request)
			assert.Equal(t, "Jane", svc.request.Name)
		})
	}
}

func TestProfileHandler_SignOut(t *testing.T) {
	svc := &mockProfileService{}
	router := newTestRouter(NewProfileHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodDelete, "/api/v1/session/abc/user", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, svc.signedOut)
	assert.Equal(t, "abc", svc.sessionID)
}
