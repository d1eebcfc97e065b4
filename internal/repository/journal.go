package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/pkg/happify"
)

type journalRepository struct {
	client *happify.Client
}

// NewJournalRepository creates a journal repository over the store API.
func NewJournalRepository(client *happify.Client) JournalRepository {
	return &journalRepository{client: client}
}

func (r *journalRepository) GetEntries(ctx context.Context, timeRange models.TimeRange) ([]models.JournalEntry, error) {
	body, err := r.client.GetRaw(ctx, "/journal", map[string]string{"timeRange": string(timeRange)})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	var entries []models.JournalEntry
	if err := json.Unmarshal(body, &entries); err == nil {
		return entries, nil
	}

	var wrapper struct {
		Entries []models.JournalEntry `json:"entries"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journal entries: %w", err)
	}
	if wrapper.Entries == nil {
		return []models.JournalEntry{}, nil
	}
	return wrapper.Entries, nil
}
