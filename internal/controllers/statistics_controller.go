package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"AnnotationDashboard/internal/models"
)

const defaultLeaderboardLimit = 5

type StatisticsController struct {
	service DashboardService
	logger  *slog.Logger
}

func NewStatisticsController(service DashboardService, logger *slog.Logger) *StatisticsController {
	return &StatisticsController{
		service: service,
		logger:  logger,
	}
}

func (ctrl *StatisticsController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := ctrl.service.BuildDashboard(r.Context())
	if err != nil {
		ctrl.logger.Error("Failed to build dashboard data", "error", err)
		ctrl.sendErrorResponse(w, "failed to fetch dashboard data", http.StatusInternalServerError)
		return
	}

	ctrl.sendJSONResponse(w, data, http.StatusOK)
}

func (ctrl *StatisticsController) GetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := ctrl.service.GetProgress(r.Context())
	if err != nil {
		ctrl.logger.Error("Failed to get annotation progress", "error", err)
		ctrl.sendErrorResponse(w, "failed to fetch annotation progress", http.StatusInternalServerError)
		return
	}

	ctrl.sendJSONResponse(w, progress, http.StatusOK)
}

func (ctrl *StatisticsController) GetAnnotators(w http.ResponseWriter, r *http.Request) {
	total, err := ctrl.service.CountAnnotators(r.Context())
	if err != nil {
		ctrl.logger.Error("Failed to count annotators", "error", err)
		ctrl.sendErrorResponse(w, "failed to count annotators", http.StatusInternalServerError)
		return
	}

	ctrl.sendJSONResponse(w, models.AnnotatorsResponse{Total: total}, http.StatusOK)
}

func (ctrl *StatisticsController) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctrl.sendErrorResponse(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := ctrl.service.GetLeaderboard(r.Context(), limit)
	if err != nil {
		ctrl.logger.Error("Failed to get leaderboard", "error", err, "limit", limit)
		ctrl.sendErrorResponse(w, "failed to fetch leaderboard", http.StatusInternalServerError)
		return
	}

	ctrl.sendJSONResponse(w, models.LeaderboardResponse{Entries: entries}, http.StatusOK)
}

func (ctrl *StatisticsController) sendJSONResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		ctrl.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (ctrl *StatisticsController) sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	ctrl.sendJSONResponse(w, models.ErrorResponse{Error: message}, statusCode)
}
