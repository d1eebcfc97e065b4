package models

import (
	"testing"
	"time"
)

func TestParseMood(t *testing.T) {
	if got := ParseMood("excited"); got != MoodExcited {
		t.Errorf("Expected excited, got %s", got)
	}
	if got := ParseMood("ecstatic"); got != MoodNeutral {
		t.Errorf("Expected unknown label to normalize to neutral, got %s", got)
	}
	if got := ParseMood(""); got != MoodNeutral {
		t.Errorf("Expected empty label to normalize to neutral, got %s", got)
	}
}

func TestIntensityScale(t *testing.T) {
	// The signed scale is monotone over the enum read worst-to-best.
	order := []Mood{MoodAngry, MoodSad, MoodAnxious, MoodTired, MoodNeutral, MoodContent, MoodHappy, MoodExcited}
	for i := 1; i < len(order); i++ {
		if order[i].Intensity() <= order[i-1].Intensity() {
			t.Errorf("Expected %s > %s, got %d <= %d",
				order[i], order[i-1], order[i].Intensity(), order[i-1].Intensity())
		}
	}
	if MoodAngry.Intensity() != -2 || MoodExcited.Intensity() != 5 {
		t.Errorf("Unexpected scale endpoints: %d, %d", MoodAngry.Intensity(), MoodExcited.Intensity())
	}
}

func TestPositiveMoods(t *testing.T) {
	positives := map[Mood]bool{MoodExcited: true, MoodHappy: true, MoodContent: true}
	for _, m := range Moods {
		if m.Positive() != positives[m] {
			t.Errorf("Positive(%s) = %v, want %v", m, m.Positive(), positives[m])
		}
	}
}

func TestParseTimeRange(t *testing.T) {
	if got := ParseTimeRange("year"); got != RangeYear {
		t.Errorf("Expected year, got %s", got)
	}
	if got := ParseTimeRange(""); got != RangeMonth {
		t.Errorf("Expected month default, got %s", got)
	}
	if got := ParseTimeRange("decade"); got != RangeMonth {
		t.Errorf("Expected month for unknown token, got %s", got)
	}
}

func TestMoodRecordWhen(t *testing.T) {
	rec := MoodRecord{Date: "2025-06-10", Timestamp: "2025-06-10T22:15:00Z"}
	got, ok := rec.When()
	if !ok || got.Hour() != 22 {
		t.Errorf("Expected timestamp preferred, got %v ok=%v", got, ok)
	}

	rec = MoodRecord{Date: "2025-06-10"}
	got, ok = rec.When()
	if !ok || !got.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected date midnight, got %v ok=%v", got, ok)
	}

	rec = MoodRecord{Date: "garbage"}
	if _, ok := rec.When(); ok {
		t.Error("Expected ok=false for unparseable record")
	}
}

func TestMoodRecordHour(t *testing.T) {
	tests := []struct {
		name     string
		rec      MoodRecord
		expected int
	}{
		{"from timestamp", MoodRecord{Timestamp: "2025-06-10T06:30:00Z"}, 6},
		{"from legacy clock", MoodRecord{Clock: "21:45"}, 21},
		{"default afternoon", MoodRecord{Date: "2025-06-10"}, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Hour(); got != tt.expected {
				t.Errorf("Hour() = %d, want %d", got, tt.expected)
			}
		})
	}
}
