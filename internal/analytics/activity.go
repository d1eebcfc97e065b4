package analytics

import (
	"sort"
	"strings"

	"github.com/happify-app/backend/internal/models"
)

// activities is the fixed keyword list scanned against record notes. The
// keyword is the activity name itself, matched case-insensitively.
var activities = []string{"Exercise", "Meditation", "Journal", "Social", "Work"}

// CorrelateActivities scans record notes for activity keywords and reports,
// per matched activity, how often the match co-occurred with a positive mood.
// Records with empty notes never count toward any activity. Activities that
// never match are dropped; when nothing matches at all, a single placeholder
// entry is returned so the dashboard always has something to render.
func CorrelateActivities(records []models.MoodRecord) []models.ActivityCorrelation {
	counts := make(map[string]int, len(activities))
	positives := make(map[string]int, len(activities))

	for _, rec := range records {
		if rec.Notes == "" {
			continue
		}
		note := strings.ToLower(rec.Notes)
		for _, name := range activities {
			if !strings.Contains(note, strings.ToLower(name)) {
				continue
			}
			counts[name]++
			if rec.Mood.Positive() {
				positives[name]++
			}
		}
	}

	result := make([]models.ActivityCorrelation, 0, len(counts))
	for _, name := range activities {
		n := counts[name]
		if n == 0 {
			continue
		}
		result = append(result, models.ActivityCorrelation{
			Name:           name,
			PositiveImpact: roundPercent(positives[name], n),
			Count:          n,
		})
	}

	if len(result) == 0 {
		return []models.ActivityCorrelation{{Name: "No activity data", PositiveImpact: 0, Count: 0}}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PositiveImpact > result[j].PositiveImpact
	})
	return result
}

func roundPercent(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(float64(numerator)/float64(denominator)*100 + 0.5)
}
