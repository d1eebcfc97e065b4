package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Mood is one of the fixed set of moods a user can log.
type Mood string

const (
	MoodExcited Mood = "excited"
	MoodHappy   Mood = "happy"
	MoodContent Mood = "content"
	MoodNeutral Mood = "neutral"
	MoodAnxious Mood = "anxious"
	MoodTired   Mood = "tired"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
)

// Moods lists every mood in declaration order. This order is load-bearing:
// it is the tie-break order for "most common mood" and the column order for
// time-of-day buckets.
var Moods = []Mood{
	MoodExcited,
	MoodHappy,
	MoodContent,
	MoodNeutral,
	MoodAnxious,
	MoodTired,
	MoodSad,
	MoodAngry,
}

// moodIntensity is the canonical mood-to-intensity map, taken from the
// mood-check input scale.
var moodIntensity = map[Mood]int{
	MoodAngry:   -2,
	MoodSad:     -1,
	MoodAnxious: 0,
	MoodTired:   1,
	MoodNeutral: 2,
	MoodContent: 3,
	MoodHappy:   4,
	MoodExcited: 5,
}

// ParseMood maps a raw mood label to a Mood. Unknown or empty labels
// normalize to neutral.
func ParseMood(s string) Mood {
	m := Mood(s)
	if _, ok := moodIntensity[m]; ok {
		return m
	}
	return MoodNeutral
}

// Intensity returns the canonical intensity for the mood.
func (m Mood) Intensity() int {
	if v, ok := moodIntensity[m]; ok {
		return v
	}
	return moodIntensity[MoodNeutral]
}

// Positive reports whether the mood counts as positive for activity
// correlation and trend insights.
func (m Mood) Positive() bool {
	switch m {
	case MoodExcited, MoodHappy, MoodContent:
		return true
	}
	return false
}

// Source records where a mood reading came from. It is provenance only and
// never feeds numeric computation.
type Source string

const (
	SourceMoodLog Source = "mood_log"
	SourceJournal Source = "journal"
	SourceTrend   Source = "trend"
	SourceDefault Source = "default"
	SourceError   Source = "error"
)

// TimeRange selects the analytics window.
type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
	RangeAll     TimeRange = "all"
)

// ParseTimeRange maps a query token to a TimeRange, defaulting to month the
// same way the dashboard does.
func ParseTimeRange(s string) TimeRange {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeQuarter, RangeYear, RangeAll:
		return TimeRange(s)
	}
	return RangeMonth
}

const (
	// DateLayout is the canonical calendar-date format for mood records.
	DateLayout = "2006-01-02"
	// ClockLayout is the legacy HH:MM time-of-day field format.
	ClockLayout = "15:04"
)

// MoodRecord is the canonical post-normalization mood reading. Date is always
// present and parseable; Timestamp and Clock may be empty on legacy records.
type MoodRecord struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp,omitempty"`
	Clock     string `json:"time,omitempty"`
	Mood      Mood   `json:"mood"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
	Source    Source `json:"source"`
}

// When returns the record's point in time: the full timestamp when present,
// otherwise midnight of the calendar date. ok is false when neither parses.
func (r MoodRecord) When() (t time.Time, ok bool) {
	if r.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
			return t, true
		}
	}
	if r.Date != "" {
		if t, err := time.Parse(DateLayout, r.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Hour returns the local hour of the record for time-of-day bucketing:
// timestamp hour when present, else the legacy HH:MM field, else 14.
func (r MoodRecord) Hour() int {
	if r.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
			return t.Hour()
		}
	}
	if r.Clock != "" {
		if t, err := time.Parse(ClockLayout, r.Clock); err == nil {
			return t.Hour()
		}
	}
	return 14
}

// RawMoodRecord is a mood reading as it arrives from any upstream source:
// the mood log, the journal, or the trend endpoint. Field names and types are
// inconsistent across sources (Mongo-style wrapper objects, `note` vs
// `notes`, missing intensity), so every field tolerates the variants.
type RawMoodRecord struct {
	ID        FlexID   `json:"_id"`
	Date      FlexDate `json:"date"`
	Timestamp FlexDate `json:"timestamp"`
	Clock     string   `json:"time"`
	Mood      string   `json:"mood"`
	Intensity *int     `json:"intensity"`
	Note      string   `json:"note"`
	Notes     string   `json:"notes"`
	Source    string   `json:"source"`
}

// FlexID decodes either a plain string identifier or a Mongo extended-JSON
// {"$oid": "..."} wrapper.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '{' {
		var wrapper struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			*f = ""
			return nil
		}
		*f = FlexID(wrapper.OID)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*f = ""
		return nil
	}
	*f = FlexID(s)
	return nil
}

// FlexDate decodes a date-ish value: a plain string, a Mongo extended-JSON
// {"$date": "..."} wrapper, or a numeric epoch-millisecond value. Unusable
// payloads decode to the empty string rather than failing the batch.
type FlexDate string

func (f *FlexDate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	switch data[0] {
	case '{':
		var wrapper struct {
			Date json.RawMessage `json:"$date"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil || len(wrapper.Date) == 0 {
			*f = ""
			return nil
		}
		return f.UnmarshalJSON(wrapper.Date)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexDate(s)
		return nil
	default:
		var ms int64
		if err := json.Unmarshal(data, &ms); err != nil {
			*f = ""
			return nil
		}
		*f = FlexDate(time.UnixMilli(ms).UTC().Format(time.RFC3339))
		return nil
	}
}

// String returns the decoded date string.
func (f FlexDate) String() string { return string(f) }
