package habit

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// HabitOutput represents a habit in use case outputs.
type HabitOutput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Icon            string
	CategoryID      *uuid.UUID
	Frequency       valueobject.Frequency
	CurrentStreak   int
	LongestStreak   int
	LastCompletedAt *time.Time
	Completed       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toHabitOutput(h *entity.Habit, ref time.Time) *HabitOutput {
	return &HabitOutput{
		ID:              h.ID,
		UserID:          h.UserID,
		Name:            h.Name,
		Icon:            h.Icon,
		CategoryID:      h.CategoryID,
		Frequency:       h.Frequency,
		CurrentStreak:   h.CurrentStreak,
		LongestStreak:   h.LongestStreak,
		LastCompletedAt: h.LastCompletedAt,
		Completed:       CompletedInPeriod(h, ref),
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}
