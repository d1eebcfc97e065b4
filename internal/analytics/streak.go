package analytics

import (
	"sort"
	"time"

	"github.com/happify-app/backend/internal/models"
)

// CalculateStreaks derives logging-streak counters from the distinct calendar
// dates present in the records. A day counts once no matter how many entries
// it has. Future-dated entries are ignored throughout. The current streak must
// touch today or yesterday; otherwise it is zero even if a long run exists
// further back.
func CalculateStreaks(records []models.MoodRecord, now time.Time) models.StreakData {
	today := truncateToDay(now)
	dates := distinctDates(records, today)
	if len(dates) == 0 {
		return models.StreakData{}
	}

	// Newest first.
	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })

	current := 0
	if gap := daysBetween(dates[0], today); gap <= 1 {
		current = 1
		for i := 1; i < len(dates); i++ {
			if daysBetween(dates[i], dates[i-1]) != 1 {
				break
			}
			current++
		}
	}

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i], dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if current > longest {
		longest = current
	}

	weekStart := today.AddDate(0, 0, -7)
	monthStart := today.AddDate(0, 0, -30)
	thisWeek, thisMonth := 0, 0
	for _, d := range dates {
		if !d.Before(weekStart) {
			thisWeek++
		}
		if !d.Before(monthStart) {
			thisMonth++
		}
	}

	return models.StreakData{
		Current:   current,
		Longest:   longest,
		ThisWeek:  thisWeek,
		ThisMonth: thisMonth,
	}
}

// distinctDates collapses records to their unique parseable calendar dates,
// dropping dates after today so a future-dated entry can never anchor a streak.
func distinctDates(records []models.MoodRecord, today time.Time) []time.Time {
	seen := make(map[string]struct{}, len(records))
	dates := make([]time.Time, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Date]; ok {
			continue
		}
		t, err := time.Parse(models.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		if t.After(today) {
			continue
		}
		seen[rec.Date] = struct{}{}
		dates = append(dates, t)
	}
	return dates
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b, where a is not after b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
