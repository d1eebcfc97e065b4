// Package service implements the aggregation orchestrator: it fetches raw
// mood signals through the repositories, prefers server-side analytics when
// the store offers them, and falls back to the local pipeline otherwise.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/happify-app/backend/internal/analytics"
	"github.com/happify-app/backend/internal/events"
	"github.com/happify-app/backend/internal/logger"
	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/internal/repository"
)

type aggregateService struct {
	moods   repository.MoodRepository
	journal repository.JournalRepository
	trend   repository.TrendRepository
	streaks repository.StreakRepository
	remote  repository.AnalyticsRepository
	bus     *events.Bus
	log     logger.Logger

	// now is swappable for tests.
	now func() time.Time

	// generation counts aggregation requests; results from a superseded
	// request never overwrite a newer one's side effects.
	generation atomic.Uint64
}

// NewAnalyticsService wires the orchestrator over its repositories. bus may
// be nil when refresh notifications are not needed.
func NewAnalyticsService(
	moods repository.MoodRepository,
	journal repository.JournalRepository,
	trend repository.TrendRepository,
	streaks repository.StreakRepository,
	remote repository.AnalyticsRepository,
	bus *events.Bus,
	log logger.Logger,
) AnalyticsService {
	return &aggregateService{
		moods:   moods,
		journal: journal,
		trend:   trend,
		streaks: streaks,
		remote:  remote,
		bus:     bus,
		log:     log,
		now:     time.Now,
	}
}

// collectRecords gathers raw mood signals with the source cascade: the mood
// log first, journal-derived moods when the log is empty, trend placeholders
// when both are empty. The result is normalized and range-filtered. Fetch
// failures degrade to the next source, never to an error.
func (s *aggregateService) collectRecords(ctx context.Context, timeRange models.TimeRange) []models.MoodRecord {
	now := s.now()
	log := s.log.WithContext(ctx)

	raw, err := s.moods.GetByTimeRange(ctx, timeRange)
	if err != nil {
		log.Warn("mood log unavailable", logger.Err(err))
		raw = nil
	}

	if len(raw) == 0 {
		entries, err := s.journal.GetEntries(ctx, timeRange)
		if err != nil {
			log.Warn("journal unavailable", logger.Err(err))
		} else {
			raw = analytics.JournalToRecords(entries)
		}
	}

	if len(raw) == 0 {
		trend, err := s.trend.GetTrend(ctx)
		if err != nil {
			log.Warn("trend endpoint unavailable", logger.Err(err))
		} else {
			raw = analytics.TrendToRecords(*trend, now)
		}
	}

	records := analytics.NormalizeAll(raw, now)
	return analytics.FilterByRange(records, timeRange, now)
}

func (s *aggregateService) Moods(ctx context.Context, timeRange models.TimeRange) ([]models.MoodRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.collectRecords(ctx, timeRange), nil
}

func (s *aggregateService) Distribution(ctx context.Context, timeRange models.TimeRange) (*models.MoodAnalytics, error) {
	return remoteFirst(ctx, s.log, "distribution",
		func(ctx context.Context) (*models.MoodAnalytics, error) {
			return s.remote.GetDistribution(ctx, timeRange)
		},
		func() *models.MoodAnalytics {
			result := analytics.Summarize(s.collectRecords(ctx, timeRange))
			return &result
		})
}

func (s *aggregateService) TimeOfDay(ctx context.Context, timeRange models.TimeRange) ([]models.TimeOfDayBucket, error) {
	return remoteFirst(ctx, s.log, "time_of_day",
		func(ctx context.Context) ([]models.TimeOfDayBucket, error) {
			return s.remote.GetTimeOfDay(ctx, timeRange)
		},
		func() []models.TimeOfDayBucket {
			return analytics.BucketByTimeOfDay(s.collectRecords(ctx, timeRange))
		})
}

func (s *aggregateService) ActivityCorrelation(ctx context.Context, timeRange models.TimeRange) ([]models.ActivityCorrelation, error) {
	return remoteFirst(ctx, s.log, "activity_correlation",
		func(ctx context.Context) ([]models.ActivityCorrelation, error) {
			return s.remote.GetActivityCorrelation(ctx, timeRange)
		},
		func() []models.ActivityCorrelation {
			return analytics.CorrelateActivities(s.collectRecords(ctx, timeRange))
		})
}

func (s *aggregateService) Streaks(ctx context.Context) (*models.StreakData, error) {
	return remoteFirst(ctx, s.log, "streaks",
		func(ctx context.Context) (*models.StreakData, error) {
			remote, err := s.streaks.GetStreak(ctx)
			if err != nil {
				return nil, err
			}
			data := remote.ToStreakData()
			return &data, nil
		},
		func() *models.StreakData {
			data := s.localStreaks(ctx)
			return &data
		})
}

// localStreaks computes streaks over the whole logged history; streaks ignore
// the selected window.
func (s *aggregateService) localStreaks(ctx context.Context) models.StreakData {
	return analytics.CalculateStreaks(s.collectRecords(ctx, models.RangeAll), s.now())
}

// Combined produces the full analytics payload for a time range. The store's
// comprehensive endpoint wins when it answers; otherwise the stages fan out
// concurrently over one shared filtered record set, each stage still trying
// its own specialized endpoint before computing locally.
func (s *aggregateService) Combined(ctx context.Context, timeRange models.TimeRange) (*models.CombinedAnalytics, error) {
	gen := s.generation.Add(1)

	if combined, err := s.remote.GetCombined(ctx, timeRange); err == nil {
		// The store's records cross a trust boundary here; re-apply the
		// defaulting rules before handing them out.
		combined.Moods = analytics.RenormalizeAll(combined.Moods, s.now())
		s.publish(timeRange, gen)
		return combined, nil
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	} else {
		s.log.WithContext(ctx).Warn("comprehensive endpoint unavailable, aggregating per stage", logger.Err(err))
	}

	records := s.collectRecords(ctx, timeRange)

	combined := &models.CombinedAnalytics{
		Moods:    records,
		Calendar: analytics.BuildCalendar(records),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := remoteFirst(gctx, s.log, "distribution",
			func(ctx context.Context) (*models.MoodAnalytics, error) {
				return s.remote.GetDistribution(ctx, timeRange)
			},
			func() *models.MoodAnalytics {
				result := analytics.Summarize(records)
				return &result
			})
		if err != nil {
			return err
		}
		combined.Summary = result.Summary
		combined.Distribution = result.Distribution
		return nil
	})

	g.Go(func() error {
		result, err := remoteFirst(gctx, s.log, "time_of_day",
			func(ctx context.Context) ([]models.TimeOfDayBucket, error) {
				return s.remote.GetTimeOfDay(ctx, timeRange)
			},
			func() []models.TimeOfDayBucket {
				return analytics.BucketByTimeOfDay(records)
			})
		if err != nil {
			return err
		}
		combined.TimeOfDay = result
		return nil
	})

	g.Go(func() error {
		result, err := remoteFirst(gctx, s.log, "activity_correlation",
			func(ctx context.Context) ([]models.ActivityCorrelation, error) {
				return s.remote.GetActivityCorrelation(ctx, timeRange)
			},
			func() []models.ActivityCorrelation {
				return analytics.CorrelateActivities(records)
			})
		if err != nil {
			return err
		}
		combined.ActivityCorrelations = result
		return nil
	})

	g.Go(func() error {
		result, err := remoteFirst(gctx, s.log, "streaks",
			func(ctx context.Context) (*models.StreakData, error) {
				remote, err := s.streaks.GetStreak(ctx)
				if err != nil {
					return nil, err
				}
				data := remote.ToStreakData()
				return &data, nil
			},
			func() *models.StreakData {
				data := s.localStreaks(gctx)
				return &data
			})
		if err != nil {
			return err
		}
		combined.StreakData = *result
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined.Insights = analytics.BuildInsights(combined.TimeOfDay, combined.ActivityCorrelations)

	s.publish(timeRange, gen)
	return combined, nil
}

// publish announces a completed aggregation unless a newer request has
// already been issued, so listeners never refresh onto stale data.
func (s *aggregateService) publish(timeRange models.TimeRange, gen uint64) {
	if s.bus == nil {
		return
	}
	if s.generation.Load() != gen {
		s.log.Debug("skipping refresh event for superseded aggregation",
			logger.String("time_range", string(timeRange)),
		)
		return
	}
	s.bus.Publish(events.RefreshEvent{TimeRange: timeRange, Generation: gen})
}
