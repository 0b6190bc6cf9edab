package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edututor/backend/internal/llm"
	"github.com/edututor/backend/internal/middlewares"
	"github.com/edututor/backend/internal/models"
	"github.com/edututor/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockTutorService is a mock implementation of TutorService
type mockTutorService struct {
	resp    *models.TutorResponse
	err     error
	request *models.TutorRequest
}

func (m *mockTutorService) Chat(ctx context.Context, req *models.TutorRequest) (*models.TutorResponse, error) {
	m.request = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

// upstreamCompleter fails every completion with a fixed error
type upstreamCompleter struct {
	err error
}

func (c *upstreamCompleter) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	return nil, c.err
}

func TestTutorHandler_Chat(t *testing.T) {
	svc := &mockTutorService{resp: &models.TutorResponse{Content: "Half of one is 1/2.", Model: "google/gemini-2.5-flash"}}
	router := newTestRouter(NewTutorHandler(svc, zap.NewNop()).RegisterRoutes)

	body := `{"messages":[{"role":"user","content":"What is half of one?"}],"includeWebSearch":true}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.request)
	assert.True(t, svc.request.IncludeWebSearch)
	assert.Len(t, svc.request.Messages, 1)
	resp := decodeBody[models.TutorResponse](t, w)
	assert.Equal(t, "Half of one is 1/2.", resp.Content)
}

func TestTutorHandler_Chat_InvalidBody(t *testing.T) {
	svc := &mockTutorService{}
	router := newTestRouter(NewTutorHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader("{"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeBody[models.TutorErrorResponse](t, w)
	assert.Equal(t, models.TutorErrorServer, resp.Type)
	assert.Nil(t, svc.request)
}

func TestTutorHandler_Chat_Errors(t *testing.T) {
	tests := []struct {
		name           string
		upstream       error
		expectedStatus int
		expectedType   models.TutorErrorKind
		expectedError  string
	}{
		{
			name:           "rate limit",
			upstream:       &llm.UpstreamError{StatusCode: http.StatusTooManyRequests, Body: "slow down"},
			expectedStatus: http.StatusTooManyRequests,
			expectedType:   models.TutorErrorRateLimit,
			expectedError:  "Rate limit exceeded. Please wait a moment before trying again.",
		},
		{
			name:           "payment required",
			upstream:       &llm.UpstreamError{StatusCode: http.StatusPaymentRequired, Body: "no credits"},
			expectedStatus: http.StatusPaymentRequired,
			expectedType:   models.TutorErrorPaymentRequired,
			expectedError:  "AI credits exhausted. Please contact support.",
		},
		{
			name:           "other upstream status",
			upstream:       &llm.UpstreamError{StatusCode: http.StatusBadGateway, Body: "bad gateway"},
			expectedStatus: http.StatusInternalServerError,
			expectedType:   models.TutorErrorServer,
			expectedError:  "AI Gateway error: 502 bad gateway",
		},
		{
			name:           "missing api key",
			upstream:       llm.ErrMissingAPIKey,
			expectedStatus: http.StatusInternalServerError,
			expectedType:   models.TutorErrorServer,
			expectedError:  "TUTOR_API_KEY is not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewTutorService(&upstreamCompleter{err: tt.upstream}, zap.NewNop())
			router := newTestRouter(NewTutorHandler(svc, zap.NewNop()).RegisterRoutes)

			body := `{"messages":[{"role":"user","content":"Help"}]}`
			w := doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeBody[models.TutorErrorResponse](t, w)
			assert.Equal(t, tt.expectedType, resp.Type)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestTutorHandler_Chat_UnclassifiedError(t *testing.T) {
	svc := &mockTutorService{err: errors.New("boom")}
	router := newTestRouter(NewTutorHandler(svc, zap.NewNop()).RegisterRoutes)

	w := doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(`{"messages":[]}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, models.TutorErrorResponse{Error: "boom", Type: models.TutorErrorServer}, decodeBody[models.TutorErrorResponse](t, w))
}

// newGuardedTutorRouter puts the rate and size limits in front of the tutor route the way cmd/api does
func newGuardedTutorRouter(svc TutorService, requestLimit int, maxBody int64) http.Handler {
	rejections := middlewares.ErrorWriterByPath(nil, map[string]middlewares.ErrorWriter{
		"/api/v1/ai-tutor": WriteTutorRejection,
	})
	r := chi.NewRouter()
	r.Use(middlewares.RecoveryMiddleware(zap.NewNop(), rejections))
	r.Use(middlewares.RateLimitMiddleware(requestLimit, time.Minute, rejections))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxBody, rejections))
	r.Route("/api/v1", NewTutorHandler(svc, zap.NewNop()).RegisterRoutes)
	return r
}

func TestTutorHandler_RateLimited(t *testing.T) {
	svc := &mockTutorService{resp: &models.TutorResponse{Content: "hi", Model: "m"}}
	router := newGuardedTutorRouter(svc, 1, 1024)

	body := `{"messages":[{"role":"user","content":"Hello"}]}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(body))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(body))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, models.TutorErrorResponse{
		Error: "Rate limit exceeded. Please wait a moment before trying again.",
		Type:  models.TutorErrorRateLimit,
	}, decodeBody[models.TutorErrorResponse](t, w))
}

func TestTutorHandler_OversizedBody(t *testing.T) {
	body := `{"messages":[{"role":"user","content":"` + strings.Repeat("x", 256) + `"}]}`

	tests := []struct {
		name          string
		hideLength    bool
		expectedError string
	}{
		{name: "declared length", expectedError: "request body too large"},
		{name: "streamed body", hideLength: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockTutorService{resp: &models.TutorResponse{Content: "hi"}}
			router := newGuardedTutorRouter(svc, 100, 64)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(body))
			if tt.hideLength {
				req.ContentLength = -1
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			resp := decodeBody[models.TutorErrorResponse](t, w)
			assert.Equal(t, models.TutorErrorServer, resp.Type)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			assert.Nil(t, svc.request)
		})
	}
}

func TestTutorHandler_PanicKeepsTutorBody(t *testing.T) {
	router := newGuardedTutorRouter(panickingTutorService{}, 100, 1024)

	w := doRequest(t, router, http.MethodPost, "/api/v1/ai-tutor", strings.NewReader(`{"messages":[]}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, models.TutorErrorResponse{Error: "internal server error", Type: models.TutorErrorServer},
		decodeBody[models.TutorErrorResponse](t, w))
}

type panickingTutorService struct{}

func (panickingTutorService) Chat(ctx context.Context, req *models.TutorRequest) (*models.TutorResponse, error) {
	panic("tutor exploded")
}
