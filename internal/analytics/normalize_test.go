package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/happify-app/backend/internal/models"
)

var testNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func TestNormalize_UnknownMoodDefaultsToNeutral(t *testing.T) {
	rec := Normalize(models.RawMoodRecord{Mood: "euphoric", Date: "2025-06-10"}, testNow)
	if rec.Mood != models.MoodNeutral {
		t.Errorf("Expected neutral for unknown mood, got %s", rec.Mood)
	}
	if rec.Intensity != models.MoodNeutral.Intensity() {
		t.Errorf("Expected mapped neutral intensity %d, got %d", models.MoodNeutral.Intensity(), rec.Intensity)
	}
}

func TestNormalize_DateDerivedFromTimestamp(t *testing.T) {
	rec := Normalize(models.RawMoodRecord{
		Mood:      "happy",
		Timestamp: "2025-06-10T22:15:00Z",
	}, testNow)
	if rec.Date != "2025-06-10" {
		t.Errorf("Expected date 2025-06-10 from timestamp, got %q", rec.Date)
	}
}

func TestNormalize_NoUsableDateFallsBackToNow(t *testing.T) {
	rec := Normalize(models.RawMoodRecord{Mood: "sad", Date: "not-a-date"}, testNow)
	if rec.Date != "2025-06-15" {
		t.Errorf("Expected now's date, got %q", rec.Date)
	}
}

func TestNormalize_ExplicitIntensityKeptAndClamped(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"in range", 4, 4},
		{"below floor", -10, -2},
		{"above ceiling", 99, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(models.RawMoodRecord{
				Mood:      "sad",
				Date:      "2025-06-10",
				Intensity: &tt.input,
			}, testNow)
			if rec.Intensity != tt.expected {
				t.Errorf("Expected intensity %d, got %d", tt.expected, rec.Intensity)
			}
		})
	}
}

func TestNormalize_MissingIntensityUsesMoodMap(t *testing.T) {
	rec := Normalize(models.RawMoodRecord{Mood: "angry", Date: "2025-06-10"}, testNow)
	if rec.Intensity != -2 {
		t.Errorf("Expected mapped intensity -2 for angry, got %d", rec.Intensity)
	}
}

func TestNormalize_NoteVsNotes(t *testing.T) {
	rec := Normalize(models.RawMoodRecord{Mood: "happy", Date: "2025-06-10", Note: "legacy field"}, testNow)
	if rec.Notes != "legacy field" {
		t.Errorf("Expected legacy note carried over, got %q", rec.Notes)
	}

	rec = Normalize(models.RawMoodRecord{Mood: "happy", Date: "2025-06-10", Note: "legacy", Notes: "current"}, testNow)
	if rec.Notes != "current" {
		t.Errorf("Expected notes to win over note, got %q", rec.Notes)
	}
}

func TestNormalize_MongoWrapperObjects(t *testing.T) {
	payload := `{
		"_id": {"$oid": "665f1c2e9b1e8a0001a1b2c3"},
		"date": {"$date": "2025-06-10T08:00:00Z"},
		"mood": "content"
	}`
	var raw models.RawMoodRecord
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	rec := Normalize(raw, testNow)
	if rec.ID != "665f1c2e9b1e8a0001a1b2c3" {
		t.Errorf("Expected oid unwrapped, got %q", rec.ID)
	}
	if rec.Date != "2025-06-10" {
		t.Errorf("Expected wrapped date truncated to day, got %q", rec.Date)
	}
}

func TestNormalize_EpochMillisDate(t *testing.T) {
	payload := `{"mood": "tired", "date": {"$date": 1749600000000}}`
	var raw models.RawMoodRecord
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	rec := Normalize(raw, testNow)
	if rec.Date != "2025-06-11" {
		t.Errorf("Expected epoch millis decoded to 2025-06-11, got %q", rec.Date)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first := Normalize(models.RawMoodRecord{
		ID:        "abc",
		Mood:      "excited",
		Date:      "2025-06-09",
		Timestamp: "2025-06-09T07:45:00Z",
		Notes:     "morning run before work",
		Source:    "mood_log",
	}, testNow)

	second := Renormalize(first, testNow)
	if first != second {
		t.Errorf("Renormalizing a canonical record changed it:\n first: %+v\nsecond: %+v", first, second)
	}
}

func TestRenormalizeAll_PreservesNilAndOrder(t *testing.T) {
	if got := RenormalizeAll(nil, testNow); got != nil {
		t.Errorf("Expected nil batch preserved, got %+v", got)
	}

	batch := []models.MoodRecord{
		{Mood: "ecstatic", Intensity: 9, Date: "2025-06-09"},
		{Mood: models.MoodSad, Intensity: -1, Date: "2025-06-10", Source: models.SourceJournal},
	}
	got := RenormalizeAll(batch, testNow)
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].Mood != models.MoodNeutral || got[0].Intensity != 5 {
		t.Errorf("Expected first record defaulted and clamped, got %+v", got[0])
	}
	if got[1] != batch[1] {
		t.Errorf("Expected canonical record unchanged, got %+v", got[1])
	}
}

func TestNormalize_NeverFails(t *testing.T) {
	rec := Normalize(models.RawMoodRecord{}, testNow)
	if rec.Mood != models.MoodNeutral {
		t.Errorf("Expected neutral for empty record, got %s", rec.Mood)
	}
	if rec.Date == "" {
		t.Error("Expected a date on an empty record")
	}
	if rec.Source != models.SourceMoodLog {
		t.Errorf("Expected default source mood_log, got %s", rec.Source)
	}
}
