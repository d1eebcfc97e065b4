package service

import (
	"context"

	"github.com/happify-app/backend/internal/models"
)

// AnalyticsService produces mood analytics for a time range. Every method
// degrades to documented defaults instead of returning domain errors; the
// only errors surfaced are context cancellations.
type AnalyticsService interface {
	// Moods returns the normalized, range-filtered records backing the
	// other computations.
	Moods(ctx context.Context, timeRange models.TimeRange) ([]models.MoodRecord, error)
	// Distribution returns per-mood counts plus the summary block.
	Distribution(ctx context.Context, timeRange models.TimeRange) (*models.MoodAnalytics, error)
	// TimeOfDay returns the four part-of-day buckets.
	TimeOfDay(ctx context.Context, timeRange models.TimeRange) ([]models.TimeOfDayBucket, error)
	// ActivityCorrelation returns per-activity positive-impact stats.
	ActivityCorrelation(ctx context.Context, timeRange models.TimeRange) ([]models.ActivityCorrelation, error)
	// Streaks returns the logging-streak counters.
	Streaks(ctx context.Context) (*models.StreakData, error)
	// Combined assembles everything above into one payload.
	Combined(ctx context.Context, timeRange models.TimeRange) (*models.CombinedAnalytics, error)
}
