package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// MoodRepository defines the interface for mood entry persistence operations.
type MoodRepository interface {
	// Create creates a new mood entry in the database.
	Create(ctx context.Context, entry *entity.MoodEntry) error

	// FindByUserAndDay retrieves the entry for the calendar day containing day.
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.MoodEntry, error)

	// FindByUserInRange retrieves all entries for a user between two days, inclusive.
	FindByUserInRange(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time) ([]*entity.MoodEntry, error)

	// Update updates an existing mood entry in the database.
	Update(ctx context.Context, entry *entity.MoodEntry) error

	// Delete removes a mood entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
