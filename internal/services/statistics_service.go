package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"AnnotationDashboard/internal/config"
	"AnnotationDashboard/internal/models"
)

const leaderboardSize = 5

type StatisticsService struct {
	platform AnnotationPlatform
	config   config.Config
	logger   *slog.Logger
}

func NewStatisticsService(platform AnnotationPlatform, cfg config.Config, logger *slog.Logger) *StatisticsService {
	return &StatisticsService{
		platform: platform,
		config:   cfg,
		logger:   logger,
	}
}

// CountByUser walks every response of every record and counts them per
// submitting user. Users without responses never appear in the result.
func CountByUser(records []models.Record) models.AnnotationCounts {
	counts := models.AnnotationCounts{}
	for _, record := range records {
		for _, response := range record.Responses {
			counts[response.UserID]++
		}
	}
	return counts
}

// ResolveNames re-keys the counts by username, one platform lookup per
// distinct user id. A failed lookup aborts the whole resolution.
func (s *StatisticsService) ResolveNames(ctx context.Context, counts models.AnnotationCounts) (models.NamedCounts, error) {
	named := make(models.NamedCounts, len(counts))
	for userID, count := range counts {
		user, err := s.platform.GetUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("resolve user %s: %w", userID, err)
		}
		named[user.Username] = count
	}
	return named, nil
}

// TopAnnotators orders the counts descending and returns the first n
// entries. Ties are broken by username ascending so repeated renders
// produce the same ordering.
func TopAnnotators(named models.NamedCounts, n int) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(named))
	for username, count := range named {
		entries = append(entries, models.LeaderboardEntry{
			Username:  username,
			Annotated: count,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Annotated != entries[j].Annotated {
			return entries[i].Annotated > entries[j].Annotated
		}
		return entries[i].Username < entries[j].Username
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// PendingRecords is the configured goal minus the records already
// annotated, clamped at zero when the goal has been overshot.
func PendingRecords(target, annotated int) int {
	pending := target - annotated
	if pending < 0 {
		return 0
	}
	return pending
}

func (s *StatisticsService) GetProgress(ctx context.Context) (*models.Progress, error) {
	dataset, err := s.platform.GetDataset(ctx, s.config.SourceDataset, s.config.SourceWorkspace)
	if err != nil {
		return nil, fmt.Errorf("fetch source dataset: %w", err)
	}

	annotated, err := s.platform.CountRecords(ctx, dataset.ID, models.ResponseStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count source records: %w", err)
	}

	return &models.Progress{
		Annotated: annotated,
		Pending:   PendingRecords(s.config.TargetRecords, annotated),
		Target:    s.config.TargetRecords,
	}, nil
}

func (s *StatisticsService) GetAnnotatorCounts(ctx context.Context) (models.AnnotationCounts, error) {
	dataset, err := s.platform.GetDataset(ctx, s.config.ResultsDataset, s.config.ResultsWorkspace)
	if err != nil {
		return nil, fmt.Errorf("fetch results dataset: %w", err)
	}

	records, err := s.platform.ListRecords(ctx, dataset.ID, "")
	if err != nil {
		return nil, fmt.Errorf("list results records: %w", err)
	}

	return CountByUser(records), nil
}

func (s *StatisticsService) GetLeaderboard(ctx context.Context, n int) ([]models.LeaderboardEntry, error) {
	counts, err := s.GetAnnotatorCounts(ctx)
	if err != nil {
		return nil, err
	}

	named, err := s.ResolveNames(ctx, counts)
	if err != nil {
		return nil, err
	}

	return TopAnnotators(named, n), nil
}

func (s *StatisticsService) CountAnnotators(ctx context.Context) (int, error) {
	counts, err := s.GetAnnotatorCounts(ctx)
	if err != nil {
		return 0, err
	}
	return len(counts), nil
}

// BuildDashboard recomputes everything the page shows from live
// platform data. Calls are sequential and any failure aborts the
// render; there is no partial page.
func (s *StatisticsService) BuildDashboard(ctx context.Context) (*models.DashboardData, error) {
	progress, err := s.GetProgress(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.GetAnnotatorCounts(ctx)
	if err != nil {
		return nil, err
	}

	named, err := s.ResolveNames(ctx, counts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Dashboard data assembled",
		"annotated", progress.Annotated,
		"pending", progress.Pending,
		"annotators", len(counts),
	)

	return &models.DashboardData{
		Progress:        *progress,
		TotalAnnotators: len(counts),
		Leaderboard:     TopAnnotators(named, leaderboardSize),
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
