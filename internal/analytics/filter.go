package analytics

import (
	"time"

	"github.com/happify-app/backend/internal/models"
)

// FilterByRange keeps the records whose point in time falls inside the
// trailing window ending at now. RangeAll is a no-op. Records whose date and
// timestamp are both unparseable are excluded (except for RangeAll, which
// never inspects them).
func FilterByRange(records []models.MoodRecord, rng models.TimeRange, now time.Time) []models.MoodRecord {
	if rng == models.RangeAll {
		return records
	}

	cutoff := rangeCutoff(rng, now)
	filtered := make([]models.MoodRecord, 0, len(records))
	for _, rec := range records {
		t, ok := rec.When()
		if !ok {
			continue
		}
		if !t.Before(cutoff) && !t.After(now) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// rangeCutoff computes the inclusive window start. Week is a fixed seven
// days; the longer ranges use calendar arithmetic so that "month" means the
// same day-of-month one month back.
func rangeCutoff(rng models.TimeRange, now time.Time) time.Time {
	switch rng {
	case models.RangeWeek:
		return now.AddDate(0, 0, -7)
	case models.RangeMonth:
		return now.AddDate(0, -1, 0)
	case models.RangeQuarter:
		return now.AddDate(0, -3, 0)
	case models.RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}
