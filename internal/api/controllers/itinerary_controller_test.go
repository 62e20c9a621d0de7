package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dateplanner/internal/models/request_models"
	"dateplanner/internal/models/response_models"
	"dateplanner/pkg/utils"
)

type stubItineraryService struct {
	resp    response_models.GenerateItineraryResponse
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubItineraryService) GenerateItinerary(_ context.Context, _ request_models.GenerateItineraryRequest) (response_models.GenerateItineraryResponse, error) {
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.resp, s.err
}

func newItineraryRouter(service *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewItineraryController(service, utils.NewActionGuard())
	r.POST("/generate-itinerary", controller.GenerateItinerary)
	return r
}

const validGenerateBody = `{"date":"2026-02-14","time":{"start":"18:00","end":"22:00"},"budgetLevel":2,"activities":["museum"],"cuisines":["italian"]}`

func TestGenerateItineraryEndpoint(t *testing.T) {
	t.Run("returns itineraries on success", func(t *testing.T) {
		service := &stubItineraryService{
			resp: response_models.GenerateItineraryResponse{
				Itineraries: []response_models.GeneratedItinerary{{ID: "abc", Theme: "Romantic & Intimate"}},
			},
		}
		router := newItineraryRouter(service)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(validGenerateBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Romantic & Intimate"`)
		assert.NotContains(t, w.Body.String(), `"degraded"`)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		router := newItineraryRouter(&stubItineraryService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(`{"date":123}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		router := newItineraryRouter(&stubItineraryService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(`{"date":"2026-02-14"}`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reports generation failure as 500", func(t *testing.T) {
		router := newItineraryRouter(&stubItineraryService{err: utils.ErrGenerationFailed})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(validGenerateBody))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "generation failed")
	})

	t.Run("concurrent request from the same caller gets 409", func(t *testing.T) {
		service := &stubItineraryService{
			resp:    response_models.GenerateItineraryResponse{Itineraries: []response_models.GeneratedItinerary{{ID: "x"}}},
			started: make(chan struct{}),
			release: make(chan struct{}),
		}
		router := newItineraryRouter(service)

		firstDone := make(chan int)
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(validGenerateBody))
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(w, req)
			firstDone <- w.Code
		}()

		<-service.started

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(validGenerateBody))
		req.RemoteAddr = "10.0.0.1:5678"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)

		close(service.release)
		require.Equal(t, http.StatusOK, <-firstDone)
		wg.Wait()

		// The key is released once the first request finishes.
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/generate-itinerary", strings.NewReader(validGenerateBody))
		req.RemoteAddr = "10.0.0.1:9999"
		service.started = nil
		service.release = nil
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
