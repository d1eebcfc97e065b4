package analytics

import (
	"testing"

	"github.com/happify-app/backend/internal/models"
)

func TestCorrelateActivities_PositiveImpactSplit(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodHappy, Intensity: 4, Notes: "went for a run - exercise"},
		{Date: "2025-06-11", Mood: models.MoodSad, Intensity: 2, Notes: "exercise was hard"},
	}

	got := CorrelateActivities(records)
	if len(got) != 1 {
		t.Fatalf("Expected 1 activity, got %d: %+v", len(got), got)
	}
	exercise := got[0]
	if exercise.Name != "Exercise" {
		t.Errorf("Expected Exercise, got %s", exercise.Name)
	}
	if exercise.Count != 2 {
		t.Errorf("Expected count 2, got %d", exercise.Count)
	}
	if exercise.PositiveImpact != 50 {
		t.Errorf("Expected positiveImpact 50, got %d", exercise.PositiveImpact)
	}
}

func TestCorrelateActivities_EmptyNotesSkipped(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodHappy, Notes: ""},
		{Date: "2025-06-11", Mood: models.MoodHappy, Notes: "meditation before bed"},
	}
	got := CorrelateActivities(records)
	if len(got) != 1 || got[0].Name != "Meditation" || got[0].Count != 1 {
		t.Errorf("Expected only Meditation:1, got %+v", got)
	}
}

func TestCorrelateActivities_CaseInsensitive(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodContent, Notes: "WORK went well, then SOCIAL time"},
	}
	got := CorrelateActivities(records)
	if len(got) != 2 {
		t.Fatalf("Expected Work and Social matched, got %+v", got)
	}
}

func TestCorrelateActivities_OneNoteCanMatchSeveral(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodExcited, Notes: "journal entry about exercise and work"},
	}
	got := CorrelateActivities(records)
	if len(got) != 3 {
		t.Fatalf("Expected 3 activities matched, got %d: %+v", len(got), got)
	}
	for _, ac := range got {
		if ac.Count != 1 || ac.PositiveImpact != 100 {
			t.Errorf("Expected count 1 / impact 100 for %s, got %+v", ac.Name, ac)
		}
	}
}

func TestCorrelateActivities_PlaceholderWhenNothingMatches(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodHappy, Notes: "nothing relevant here"},
	}
	got := CorrelateActivities(records)
	if len(got) != 1 {
		t.Fatalf("Expected single placeholder entry, got %+v", got)
	}
	if got[0].Count != 0 || got[0].PositiveImpact != 0 {
		t.Errorf("Expected zeroed placeholder, got %+v", got[0])
	}
}

func TestCorrelateActivities_SortedByImpactDescending(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodSad, Notes: "work all day"},
		{Date: "2025-06-11", Mood: models.MoodSad, Notes: "work again"},
		{Date: "2025-06-12", Mood: models.MoodHappy, Notes: "morning exercise"},
	}
	got := CorrelateActivities(records)
	if len(got) != 2 {
		t.Fatalf("Expected 2 activities, got %+v", got)
	}
	if got[0].Name != "Exercise" || got[0].PositiveImpact != 100 {
		t.Errorf("Expected Exercise first with 100, got %+v", got[0])
	}
	if got[1].Name != "Work" || got[1].PositiveImpact != 0 {
		t.Errorf("Expected Work last with 0, got %+v", got[1])
	}
}

func TestCorrelateActivities_RoundsToNearestPercent(t *testing.T) {
	records := []models.MoodRecord{
		{Date: "2025-06-10", Mood: models.MoodHappy, Notes: "social lunch"},
		{Date: "2025-06-11", Mood: models.MoodHappy, Notes: "social dinner"},
		{Date: "2025-06-12", Mood: models.MoodSad, Notes: "awkward social event"},
	}
	got := CorrelateActivities(records)
	// 2/3 = 66.67 rounds to 67.
	if got[0].PositiveImpact != 67 {
		t.Errorf("Expected 67, got %d", got[0].PositiveImpact)
	}
}
