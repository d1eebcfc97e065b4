package repository

import (
	"context"
	"fmt"

	"github.com/happify-app/backend/internal/models"
	"github.com/happify-app/backend/pkg/happify"
)

type streakRepository struct {
	client *happify.Client
}

// NewStreakRepository creates a repository for the server-side streak
// counters.
func NewStreakRepository(client *happify.Client) StreakRepository {
	return &streakRepository{client: client}
}

func (r *streakRepository) GetStreak(ctx context.Context) (*models.RemoteStreak, error) {
	var streak models.RemoteStreak
	if err := r.client.Get(ctx, "/user/streak", nil, &streak); err != nil {
		return nil, fmt.Errorf("failed to fetch streak: %w", err)
	}
	return &streak, nil
}
