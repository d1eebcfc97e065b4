package repository

import (
	"context"
	"fmt"

	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/pkg/happify"
)

type analyticsRepository struct {
	client *happify.Client
}

// NewAnalyticsRepository creates a repository for the optional server-side
// analytics endpoints. These are preferred over local computation when they
// answer; any failure is an ordinary error the orchestrator recovers from.
func NewAnalyticsRepository(client *happify.Client) AnalyticsRepository {
	return &analyticsRepository{client: client}
}

func (r *analyticsRepository) GetDistribution(ctx context.Context, timeRange models.TimeRange) (*models.MoodAnalytics, error) {
	var result models.MoodAnalytics
	if err := r.client.Get(ctx, "/analytics/mood-distribution", rangeQuery(timeRange), &result); err != nil {
		return nil, fmt.Errorf("failed to fetch remote distribution: %w", err)
	}
	return &result, nil
}

func (r *analyticsRepository) GetTimeOfDay(ctx context.Context, timeRange models.TimeRange) ([]models.TimeOfDayBucket, error) {
	var buckets []models.TimeOfDayBucket
	if err := r.client.Get(ctx, "/analytics/mood-by-time", rangeQuery(timeRange), &buckets); err != nil {
		return nil, fmt.Errorf("failed to fetch remote time-of-day buckets: %w", err)
	}
	if len(buckets) != 4 {
		return nil, fmt.Errorf("remote time-of-day payload has %d buckets, want 4", len(buckets))
	}
	return buckets, nil
}

func (r *analyticsRepository) GetActivityCorrelation(ctx context.Context, timeRange models.TimeRange) ([]models.ActivityCorrelation, error) {
	var result []models.ActivityCorrelation
	if err := r.client.Get(ctx, "/analytics/activity-correlation", rangeQuery(timeRange), &result); err != nil {
		return nil, fmt.Errorf("failed to fetch remote activity correlation: %w", err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("remote activity correlation payload is empty")
	}
	return result, nil
}

func (r *analyticsRepository) GetCombined(ctx context.Context, timeRange models.TimeRange) (*models.CombinedAnalytics, error) {
	var result models.CombinedAnalytics
	if err := r.client.Get(ctx, "/analytics/comprehensive", rangeQuery(timeRange), &result); err != nil {
		return nil, fmt.Errorf("failed to fetch remote combined analytics: %w", err)
	}
	return &result, nil
}

func rangeQuery(timeRange models.TimeRange) map[string]string {
	return map[string]string{"timeRange": string(timeRange)}
}
