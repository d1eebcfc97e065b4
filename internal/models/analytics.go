package models

import "encoding/json"

// Variability buckets the population standard deviation of mood intensity.
type Variability string

const (
	VariabilityLow    Variability = "low"
	VariabilityMedium Variability = "medium"
	VariabilityHigh   Variability = "high"
)

// Trend is the direction of mood intensity over a window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendWorsening Trend = "worsening"
	TrendStable    Trend = "stable"
)

// MoodCount is one slice of the mood distribution.
type MoodCount struct {
	Mood  Mood `json:"mood"`
	Count int  `json:"count"`
}

// AnalyticsSummary is the headline statistics block for a time range.
type AnalyticsSummary struct {
	MostCommonMood   Mood        `json:"mostCommonMood"`
	AverageIntensity float64     `json:"averageIntensity"`
	Variability      Variability `json:"variability"`
	Trend            Trend       `json:"trend"`
	TotalEntries     int         `json:"totalEntries"`
}

// MoodAnalytics pairs the distribution with its summary.
type MoodAnalytics struct {
	Distribution []MoodCount      `json:"distribution"`
	Summary      AnalyticsSummary `json:"summary"`
}

// Time-of-day bucket labels, in chart order.
const (
	BucketMorning   = "Morning"
	BucketAfternoon = "Afternoon"
	BucketEvening   = "Evening"
	BucketNight     = "Night"
)

// TimeOfDayBucket tallies moods logged within one part of the day. Counts
// always carries an entry for every mood, zero included.
type TimeOfDayBucket struct {
	Time   string
	Counts map[Mood]int
}

// MarshalJSON flattens the bucket into the chart shape the dashboard
// consumes: {"time": "Morning", "excited": 5, "happy": 8, ...}.
func (b TimeOfDayBucket) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(Moods)+1)
	flat["time"] = b.Time
	for _, m := range Moods {
		flat[string(m)] = b.Counts[m]
	}
	return json.Marshal(flat)
}

// UnmarshalJSON reverses MarshalJSON so remote bucket payloads round-trip.
func (b *TimeOfDayBucket) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	b.Counts = make(map[Mood]int, len(Moods))
	if raw, ok := flat["time"]; ok {
		if err := json.Unmarshal(raw, &b.Time); err != nil {
			return err
		}
	}
	for _, m := range Moods {
		var n int
		if raw, ok := flat[string(m)]; ok {
			if err := json.Unmarshal(raw, &n); err != nil {
				return err
			}
		}
		b.Counts[m] = n
	}
	return nil
}

// ActivityCorrelation reports how often a note-mentioned activity co-occurs
// with a positive mood. PositiveImpact is a 0-100 percentage and is 0 when
// Count is 0.
type ActivityCorrelation struct {
	Name           string `json:"name"`
	PositiveImpact int    `json:"positiveImpact"`
	Count          int    `json:"count"`
}

// StreakData holds the logging-streak counters. Longest is always at least
// Current.
type StreakData struct {
	Current   int `json:"current"`
	Longest   int `json:"longest"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
}

// CalendarDay is one day of the mood calendar: the dominant mood for the day
// and how many entries it had.
type CalendarDay struct {
	Date    string `json:"date"`
	Mood    Mood   `json:"mood"`
	Entries int    `json:"entries"`
}

// Insights is the structured form of the dashboard's insight blurbs: the
// part of day with the most positive moods and the activity with the best
// positive impact. Either field may be empty when there is no signal.
type Insights struct {
	BestTimeOfDay string `json:"bestTimeOfDay,omitempty"`
	TopActivity   string `json:"topActivity,omitempty"`
}

// CombinedAnalytics is the full aggregation result for one time range.
type CombinedAnalytics struct {
	Moods                []MoodRecord          `json:"moods"`
	Summary              AnalyticsSummary      `json:"summary"`
	Distribution         []MoodCount           `json:"distribution"`
	TimeOfDay            []TimeOfDayBucket     `json:"timeOfDay"`
	ActivityCorrelations []ActivityCorrelation `json:"activityCorrelations"`
	StreakData           StreakData            `json:"streakData"`
	Calendar             []CalendarDay         `json:"calendar"`
	Insights             Insights              `json:"insights"`
}

// JournalEntry is a journal document as returned by the journal API. Mood is
// optional; when absent it is inferred from Content.
type JournalEntry struct {
	ID        FlexID   `json:"_id"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	Date      FlexDate `json:"date"`
	Timestamp FlexDate `json:"timestamp"`
}

// MoodTrend is the trend endpoint's payload: a coarse direction plus the
// most recent mood labels, used only when no other source yields data.
type MoodTrend struct {
	Trend       string   `json:"trend"`
	Description string   `json:"description"`
	Recent      []string `json:"recent"`
}

// RemoteStreak is the streak endpoint's payload shape.
type RemoteStreak struct {
	Streak        int `json:"streak"`
	LongestStreak int `json:"longestStreak"`
	ThisWeek      int `json:"thisWeek"`
	ThisMonth     int `json:"thisMonth"`
}

// ToStreakData converts the endpoint shape to the canonical counters,
// enforcing longest >= current.
func (r RemoteStreak) ToStreakData() StreakData {
	longest := r.LongestStreak
	if longest < r.Streak {
		longest = r.Streak
	}
	return StreakData{
		Current:   r.Streak,
		Longest:   longest,
		ThisWeek:  r.ThisWeek,
		ThisMonth: r.ThisMonth,
	}
}
