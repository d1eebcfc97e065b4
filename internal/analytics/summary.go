package analytics

import (
	"math"
	"sort"

	"github.com/happify-app/backend/internal/models"
)

// defaultAverageIntensity is the documented average for an empty window. It
// predates the signed intensity scale and is kept for dashboard compatibility.
const defaultAverageIntensity = 3

// Summarize computes the mood distribution and the headline summary for a
// filtered record set. An empty input yields the documented default summary
// rather than an error.
func Summarize(records []models.MoodRecord) models.MoodAnalytics {
	if len(records) == 0 {
		return models.MoodAnalytics{
			Distribution: []models.MoodCount{},
			Summary: models.AnalyticsSummary{
				MostCommonMood:   models.MoodNeutral,
				AverageIntensity: defaultAverageIntensity,
				Variability:      models.VariabilityLow,
				Trend:            models.TrendStable,
				TotalEntries:     0,
			},
		}
	}

	counts := make(map[models.Mood]int, len(models.Moods))
	for _, rec := range records {
		counts[rec.Mood]++
	}

	// Walk the fixed enumeration so the distribution order and the
	// most-common tie-break are deterministic.
	distribution := make([]models.MoodCount, 0, len(counts))
	mostCommon := models.MoodNeutral
	best := 0
	for _, m := range models.Moods {
		n := counts[m]
		if n == 0 {
			continue
		}
		distribution = append(distribution, models.MoodCount{Mood: m, Count: n})
		if n > best {
			mostCommon = m
			best = n
		}
	}

	return models.MoodAnalytics{
		Distribution: distribution,
		Summary: models.AnalyticsSummary{
			MostCommonMood:   mostCommon,
			AverageIntensity: meanIntensity(records),
			Variability:      variability(records),
			Trend:            trend(records),
			TotalEntries:     len(records),
		},
	}
}

func meanIntensity(records []models.MoodRecord) float64 {
	var sum float64
	for _, rec := range records {
		sum += float64(rec.Intensity)
	}
	return sum / float64(len(records))
}

// variability buckets the population standard deviation of intensity.
// Fewer than two records cannot vary.
func variability(records []models.MoodRecord) models.Variability {
	if len(records) < 2 {
		return models.VariabilityLow
	}
	mean := meanIntensity(records)
	var sumSq float64
	for _, rec := range records {
		d := float64(rec.Intensity) - mean
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(len(records)))
	switch {
	case stdDev > 1.5:
		return models.VariabilityHigh
	case stdDev > 0.7:
		return models.VariabilityMedium
	default:
		return models.VariabilityLow
	}
}

// trend compares the mean intensity of the older and newer halves of the
// chronologically sorted records.
func trend(records []models.MoodRecord) models.Trend {
	if len(records) < 3 {
		return models.TrendStable
	}

	sorted := make([]models.MoodRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sorted[i].When()
		tj, okj := sorted[j].When()
		if oki != okj {
			return okj // unparseable records sort first (oldest)
		}
		return ti.Before(tj)
	})

	mid := len(sorted) / 2
	older := meanIntensity(sorted[:mid])
	newer := meanIntensity(sorted[mid:])

	switch diff := newer - older; {
	case diff > 0.5:
		return models.TrendImproving
	case diff < -0.5:
		return models.TrendWorsening
	default:
		return models.TrendStable
	}
}
