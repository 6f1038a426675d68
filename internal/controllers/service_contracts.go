package controllers

import (
	"context"

	"AnnotationDashboard/internal/models"
)

type DashboardService interface {
	BuildDashboard(ctx context.Context) (*models.DashboardData, error)
	GetProgress(ctx context.Context) (*models.Progress, error)
	CountAnnotators(ctx context.Context) (int, error)
	GetLeaderboard(ctx context.Context, n int) ([]models.LeaderboardEntry, error)
}
