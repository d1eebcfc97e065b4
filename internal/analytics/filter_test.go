package analytics

import (
	"testing"
	"time"

	"github.com/happify-app/backend/internal/models"
)

func record(date string, mood models.Mood) models.MoodRecord {
	return models.MoodRecord{
		Date:      date,
		Mood:      mood,
		Intensity: mood.Intensity(),
		Source:    models.SourceMoodLog,
	}
}

func TestFilterByRange_Week(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("2025-06-14", models.MoodHappy),
		record("2025-06-09", models.MoodContent),
		record("2025-06-07", models.MoodSad), // 8 days back, outside
		record("2025-01-01", models.MoodAngry),
	}

	got := FilterByRange(records, models.RangeWeek, now)
	if len(got) != 2 {
		t.Fatalf("Expected 2 records inside the week window, got %d", len(got))
	}
	if got[0].Date != "2025-06-14" || got[1].Date != "2025-06-09" {
		t.Errorf("Unexpected records kept: %+v", got)
	}
}

func TestFilterByRange_MonthIsCalendarArithmetic(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("2025-03-05", models.MoodHappy),
		record("2025-02-27", models.MoodSad),
	}

	// AddDate(0,-1,0) from Mar 31 normalizes to Mar 3, so Feb 27 is out.
	got := FilterByRange(records, models.RangeMonth, now)
	if len(got) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(got))
	}
	if got[0].Date != "2025-03-05" {
		t.Errorf("Expected 2025-03-05 kept, got %q", got[0].Date)
	}
}

func TestFilterByRange_AllIsNoOp(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("1999-01-01", models.MoodHappy),
		record("garbage", models.MoodSad),
	}
	got := FilterByRange(records, models.RangeAll, now)
	if len(got) != len(records) {
		t.Errorf("Expected all %d records for range=all, got %d", len(records), len(got))
	}
}

func TestFilterByRange_UnparseableDatesExcluded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("not-a-date", models.MoodHappy),
		record("2025-06-14", models.MoodContent),
	}
	got := FilterByRange(records, models.RangeYear, now)
	if len(got) != 1 {
		t.Fatalf("Expected unparseable record excluded, got %d records", len(got))
	}
}

func TestFilterByRange_FutureRecordsExcluded(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	records := []models.MoodRecord{
		record("2025-07-01", models.MoodHappy),
		record("2025-06-10", models.MoodContent),
	}
	got := FilterByRange(records, models.RangeMonth, now)
	if len(got) != 1 || got[0].Date != "2025-06-10" {
		t.Errorf("Expected only the past record, got %+v", got)
	}
}

func TestFilterByRange_TimestampPreferredOverDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	rec := record("1999-01-01", models.MoodHappy)
	rec.Timestamp = "2025-06-14T08:00:00Z"

	got := FilterByRange([]models.MoodRecord{rec}, models.RangeWeek, now)
	if len(got) != 1 {
		t.Error("Expected record kept via its timestamp despite stale date field")
	}
}
