package analytics

import (
	"sort"

	"github.com/happify-app/backend/internal/models"
)

// BuildCalendar collapses the records into one entry per calendar date
// carrying the day's dominant mood and entry count, sorted by date ascending.
// Ties on the dominant mood break by enumeration order.
func BuildCalendar(records []models.MoodRecord) []models.CalendarDay {
	perDay := make(map[string]map[models.Mood]int)
	for _, rec := range records {
		if rec.Date == "" {
			continue
		}
		counts, ok := perDay[rec.Date]
		if !ok {
			counts = make(map[models.Mood]int)
			perDay[rec.Date] = counts
		}
		counts[rec.Mood]++
	}

	days := make([]models.CalendarDay, 0, len(perDay))
	for date, counts := range perDay {
		dominant := models.MoodNeutral
		best := 0
		total := 0
		for _, m := range models.Moods {
			n := counts[m]
			total += n
			if n > best {
				dominant = m
				best = n
			}
		}
		days = append(days, models.CalendarDay{Date: date, Mood: dominant, Entries: total})
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
