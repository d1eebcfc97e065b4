package analytics

import (
	"strings"
	"time"

	"github.com/happify-app/backend/internal/models"
)

// sentimentKeywords maps journal vocabulary to mood labels. First match in
// declaration order wins, so stronger signals sit before weaker ones.
var sentimentKeywords = []struct {
	mood  models.Mood
	words []string
}{
	{models.MoodExcited, []string{"excited", "thrilled", "amazing", "can't wait", "ecstatic"}},
	{models.MoodHappy, []string{"happy", "joy", "great", "wonderful", "fantastic", "grateful"}},
	{models.MoodAngry, []string{"angry", "furious", "mad", "annoyed", "frustrated"}},
	{models.MoodSad, []string{"sad", "down", "depressed", "cried", "lonely", "miserable"}},
	{models.MoodAnxious, []string{"anxious", "worried", "nervous", "stressed", "overwhelmed"}},
	{models.MoodTired, []string{"tired", "exhausted", "drained", "sleepy", "fatigued"}},
	{models.MoodContent, []string{"content", "calm", "peaceful", "relaxed", "fine"}},
}

// InferMood maps free journal text to a mood label by keyword scan, used when
// a journal entry carries no explicit mood. Text with no recognizable signal
// infers neutral.
func InferMood(content string) models.Mood {
	text := strings.ToLower(content)
	for _, group := range sentimentKeywords {
		for _, w := range group.words {
			if strings.Contains(text, w) {
				return group.mood
			}
		}
	}
	return models.MoodNeutral
}

// JournalToRecords converts journal entries into mood records, inferring the
// mood from content when the entry has none. Journal text becomes the
// record's notes so the activity correlator can see it.
func JournalToRecords(entries []models.JournalEntry) []models.RawMoodRecord {
	records := make([]models.RawMoodRecord, 0, len(entries))
	for _, e := range entries {
		mood := e.Mood
		if mood == "" {
			mood = string(InferMood(e.Content))
		}
		records = append(records, models.RawMoodRecord{
			ID:        e.ID,
			Date:      e.Date,
			Timestamp: e.Timestamp,
			Mood:      mood,
			Notes:     e.Content,
			Source:    string(models.SourceJournal),
		})
	}
	return records
}

// TrendToRecords synthesizes placeholder records from the trend endpoint's
// recent mood labels. Used only when every other source is empty; the labels
// carry no dates, so the newest label lands on today and the rest walk
// backward one day at a time.
func TrendToRecords(trend models.MoodTrend, now time.Time) []models.RawMoodRecord {
	records := make([]models.RawMoodRecord, 0, len(trend.Recent))
	for i, label := range trend.Recent {
		day := now.AddDate(0, 0, -(len(trend.Recent) - 1 - i))
		records = append(records, models.RawMoodRecord{
			Date:   models.FlexDate(day.Format(models.DateLayout)),
			Mood:   label,
			Source: string(models.SourceTrend),
		})
	}
	return records
}
