package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindByUser retrieves all habits for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Habit, error)

	// Update persists the habit's streak state and metadata as a single row
	// update, so completion timestamp and streak counters change atomically.
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete soft-deletes a habit from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
