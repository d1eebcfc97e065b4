package analytics

import "github.com/happify-app/backend/internal/models"

// BuildInsights distills the bucketed and correlated results into the two
// headline insights. BestTimeOfDay is the bucket with the most positive-mood
// entries (earlier bucket wins ties); TopActivity is the best-ranked activity
// that actually matched something.
func BuildInsights(buckets []models.TimeOfDayBucket, correlations []models.ActivityCorrelation) models.Insights {
	var insights models.Insights

	best := 0
	for _, b := range buckets {
		positives := 0
		for _, m := range models.Moods {
			if m.Positive() {
				positives += b.Counts[m]
			}
		}
		if positives > best {
			best = positives
			insights.BestTimeOfDay = b.Time
		}
	}

	for _, ac := range correlations {
		if ac.Count > 0 {
			insights.TopActivity = ac.Name
			break
		}
	}

	return insights
}
