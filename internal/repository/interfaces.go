package repository

import (
	"context"

	"github.com/happify-app/backend/internal/models"
)

// MoodRepository defines the interface for mood-log data access.
type MoodRepository interface {
	GetByTimeRange(ctx context.Context, timeRange models.TimeRange) ([]models.RawMoodRecord, error)
}

// JournalRepository defines the interface for journal data access.
type JournalRepository interface {
	GetEntries(ctx context.Context, timeRange models.TimeRange) ([]models.JournalEntry, error)
}

// TrendRepository defines the interface for the recent-mood-trend endpoint.
type TrendRepository interface {
	GetTrend(ctx context.Context) (*models.MoodTrend, error)
}

// StreakRepository defines the interface for the server-side streak counters.
type StreakRepository interface {
	GetStreak(ctx context.Context) (*models.RemoteStreak, error)
}

// AnalyticsRepository defines the interface for the optional server-side
// analytics endpoints. Implementations return an error when an endpoint is
// unavailable or answers with an unusable payload; callers fall back to
// local computation.
type AnalyticsRepository interface {
	GetDistribution(ctx context.Context, timeRange models.TimeRange) (*models.MoodAnalytics, error)
	GetTimeOfDay(ctx context.Context, timeRange models.TimeRange) ([]models.TimeOfDayBucket, error)
	GetActivityCorrelation(ctx context.Context, timeRange models.TimeRange) ([]models.ActivityCorrelation, error)
	GetCombined(ctx context.Context, timeRange models.TimeRange) (*models.CombinedAnalytics, error)
}
