// Package analytics implements the mood-analytics aggregation pipeline:
// normalization of heterogeneous mood readings, time-range filtering, and the
// pure per-stage computations (distribution and summary statistics,
// time-of-day buckets, activity correlation, streaks, calendar view).
//
// Every function here is a pure computation over its inputs; fetching the
// inputs is the repository layer's job.
package analytics

import (
	"time"

	"github.com/happify-app/backend/internal/models"
)

// Normalize converts a raw upstream record into the canonical MoodRecord.
// It never fails: unknown moods become neutral, a missing date is derived
// from the timestamp, and a record with neither usable is pinned to now.
func Normalize(raw models.RawMoodRecord, now time.Time) models.MoodRecord {
	mood := models.ParseMood(raw.Mood)

	intensity := mood.Intensity()
	if raw.Intensity != nil {
		intensity = clampIntensity(*raw.Intensity)
	}

	notes := raw.Notes
	if notes == "" {
		notes = raw.Note
	}

	timestamp := normalizeTimestamp(raw.Timestamp.String())

	date := normalizeDate(raw.Date.String())
	if date == "" && timestamp != "" {
		if t, err := time.Parse(time.RFC3339, timestamp); err == nil {
			date = t.Format(models.DateLayout)
		}
	}
	if date == "" {
		date = now.Format(models.DateLayout)
	}

	source := models.Source(raw.Source)
	switch source {
	case models.SourceMoodLog, models.SourceJournal, models.SourceTrend, models.SourceDefault, models.SourceError:
	default:
		source = models.SourceMoodLog
	}

	return models.MoodRecord{
		ID:        string(raw.ID),
		Date:      date,
		Timestamp: timestamp,
		Clock:     normalizeClock(raw.Clock),
		Mood:      mood,
		Intensity: intensity,
		Notes:     notes,
		Source:    source,
	}
}

// NormalizeAll normalizes a batch, preserving order.
func NormalizeAll(raws []models.RawMoodRecord, now time.Time) []models.MoodRecord {
	records := make([]models.MoodRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, Normalize(raw, now))
	}
	return records
}

// Renormalize runs an already-canonical record back through the defaulting
// rules, so records that crossed a trust boundary still satisfy the
// invariants downstream stages rely on.
func Renormalize(rec models.MoodRecord, now time.Time) models.MoodRecord {
	intensity := rec.Intensity
	return Normalize(models.RawMoodRecord{
		ID:        models.FlexID(rec.ID),
		Date:      models.FlexDate(rec.Date),
		Timestamp: models.FlexDate(rec.Timestamp),
		Clock:     rec.Clock,
		Mood:      string(rec.Mood),
		Intensity: &intensity,
		Notes:     rec.Notes,
		Source:    string(rec.Source),
	}, now)
}

// RenormalizeAll renormalizes a batch, preserving order. A nil batch stays
// nil so pass-through payloads keep their shape.
func RenormalizeAll(recs []models.MoodRecord, now time.Time) []models.MoodRecord {
	if recs == nil {
		return nil
	}
	records := make([]models.MoodRecord, 0, len(recs))
	for _, rec := range recs {
		records = append(records, Renormalize(rec, now))
	}
	return records
}

// clampIntensity bounds an explicit intensity to the canonical [-2, 5] scale.
func clampIntensity(v int) int {
	if v < -2 {
		return -2
	}
	if v > 5 {
		return 5
	}
	return v
}

// normalizeTimestamp keeps a timestamp only if it parses as RFC 3339 or a
// close variant, re-encoding the variants canonically.
func normalizeTimestamp(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return ""
}

// normalizeDate truncates a date-ish string to YYYY-MM-DD if possible.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse(models.DateLayout, s); err == nil {
		return s
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(models.DateLayout)
	}
	if len(s) > len(models.DateLayout) {
		prefix := s[:len(models.DateLayout)]
		if _, err := time.Parse(models.DateLayout, prefix); err == nil {
			return prefix
		}
	}
	return ""
}

// normalizeClock keeps a legacy HH:MM field only when it parses.
func normalizeClock(s string) string {
	if s == "" {
		return ""
	}
	if _, err := time.Parse(models.ClockLayout, s); err != nil {
		return ""
	}
	return s
}
