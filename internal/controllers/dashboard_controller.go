package controllers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"AnnotationDashboard/internal/models"
)

type DashboardController struct {
	service DashboardService
	logger  *slog.Logger
}

func NewDashboardController(service DashboardService, logger *slog.Logger) *DashboardController {
	return &DashboardController{
		service: service,
		logger:  logger,
	}
}

type dashboardView struct {
	Data      *models.DashboardData
	ChartJSON template.JS
}

type chartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// RenderDashboard fetches live platform data and renders the full
// page. The page is rebuilt on every request; a failed fetch fails the
// whole render.
func (ctrl *DashboardController) RenderDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := ctrl.service.BuildDashboard(r.Context())
	if err != nil {
		ctrl.logger.Error("Failed to build dashboard page", "error", err)
		http.Error(w, "failed to load dashboard data", http.StatusInternalServerError)
		return
	}

	view, err := buildDashboardView(data)
	if err != nil {
		ctrl.logger.Error("Failed to build dashboard view", "error", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		ctrl.logger.Error("Failed to render dashboard template", "error", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		ctrl.logger.Error("Failed to write dashboard page", "error", err)
	}
}

func (ctrl *DashboardController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(models.HealthResponse{Status: "ok"}); err != nil {
		ctrl.logger.Error("Failed to encode health response", "error", err)
	}
}

func buildDashboardView(data *models.DashboardData) (*dashboardView, error) {
	chart := chartData{
		Labels: []string{"Annotated", "Pending"},
		Values: []int{data.Progress.Annotated, data.Progress.Pending},
	}

	payload, err := json.Marshal(chart)
	if err != nil {
		return nil, err
	}

	return &dashboardView{
		Data:      data,
		ChartJSON: template.JS(payload),
	}, nil
}
