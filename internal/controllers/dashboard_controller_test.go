package controllers_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"AnnotationDashboard/internal/controllers"
)

func setupDashboardController() (*controllers.DashboardController, *mockDashboardService) {
	service := new(mockDashboardService)
	return controllers.NewDashboardController(service, slog.Default()), service
}

func TestRenderDashboard(t *testing.T) {
	t.Run("renders the page with live data", func(t *testing.T) {
		ctrl, service := setupDashboardController()
		service.On("BuildDashboard", mock.Anything).Return(sampleDashboardData(), nil)

		rec := httptest.NewRecorder()
		ctrl.RenderDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

		body := rec.Body.String()
		assert.Contains(t, body, "Annotation Progress Dashboard")
		assert.Contains(t, body, "ana")
		assert.Contains(t, body, "bob")
		assert.Contains(t, body, `"values":[37,63]`)
		service.AssertExpectations(t)
	})

	t.Run("fetch failure fails the whole render", func(t *testing.T) {
		ctrl, service := setupDashboardController()
		service.On("BuildDashboard", mock.Anything).Return(nil, errors.New("platform down"))

		rec := httptest.NewRecorder()
		ctrl.RenderDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Hall of Fame")
	})
}

func TestHealth(t *testing.T) {
	ctrl, _ := setupDashboardController()

	rec := httptest.NewRecorder()
	ctrl.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
