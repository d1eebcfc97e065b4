package analytics

import "github.com/happify-app/backend/internal/models"

// BucketByTimeOfDay tallies moods into the four fixed parts of the day. All
// four buckets are always returned in chart order, zero-filled for every
// mood, so the result shape never depends on the input.
func BucketByTimeOfDay(records []models.MoodRecord) []models.TimeOfDayBucket {
	labels := []string{
		models.BucketMorning,
		models.BucketAfternoon,
		models.BucketEvening,
		models.BucketNight,
	}

	buckets := make([]models.TimeOfDayBucket, len(labels))
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		counts := make(map[models.Mood]int, len(models.Moods))
		for _, m := range models.Moods {
			counts[m] = 0
		}
		buckets[i] = models.TimeOfDayBucket{Time: label, Counts: counts}
		index[label] = i
	}

	for _, rec := range records {
		buckets[index[bucketLabel(rec.Hour())]].Counts[rec.Mood]++
	}
	return buckets
}

// bucketLabel maps an hour to its part of day. Boundaries are half-open:
// Morning [5,12), Afternoon [12,17), Evening [17,21), Night [21,5).
func bucketLabel(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return models.BucketMorning
	case hour >= 12 && hour < 17:
		return models.BucketAfternoon
	case hour >= 17 && hour < 21:
		return models.BucketEvening
	default:
		return models.BucketNight
	}
}
