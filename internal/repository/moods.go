package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/pkg/happify"
)

type moodRepository struct {
	client *happify.Client
}

// NewMoodRepository creates a mood-log repository over the store API.
func NewMoodRepository(client *happify.Client) MoodRepository {
	return &moodRepository{client: client}
}

func (r *moodRepository) GetByTimeRange(ctx context.Context, timeRange models.TimeRange) ([]models.RawMoodRecord, error) {
	body, err := r.client.GetRaw(ctx, "/moods", map[string]string{"timeRange": string(timeRange)})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch moods: %w", err)
	}
	return decodeMoodList(body)
}

// decodeMoodList tolerates both payload shapes the store has shipped: a bare
// array and an object wrapping the array under "moods" or "data".
func decodeMoodList(body []byte) ([]models.RawMoodRecord, error) {
	var records []models.RawMoodRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Moods []models.RawMoodRecord `json:"moods"`
		Data  []models.RawMoodRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mood list: %w", err)
	}
	if wrapper.Moods != nil {
		return wrapper.Moods, nil
	}
	if wrapper.Data != nil {
		return wrapper.Data, nil
	}
	return []models.RawMoodRecord{}, nil
}
