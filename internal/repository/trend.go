package repository

import (
	"context"
	"fmt"

	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/pkg/happify"
)

type trendRepository struct {
	client *happify.Client
}

// NewTrendRepository creates a repository for the recent-mood-trend endpoint.
func NewTrendRepository(client *happify.Client) TrendRepository {
	return &trendRepository{client: client}
}

func (r *trendRepository) GetTrend(ctx context.Context) (*models.MoodTrend, error) {
	var trend models.MoodTrend
	if err := r.client.Get(ctx, "/moods/trend", nil, &trend); err != nil {
		return nil, fmt.Errorf("failed to fetch mood trend: %w", err)
	}
	return &trend, nil
}
