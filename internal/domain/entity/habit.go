package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// Habit represents a tracked habit with its streak state.
//
// PreviousStreak and PreviousCompletedAt hold a single-level snapshot of the
// streak state taken on completion, so that one uncomplete can restore it.
// Invariants: LongestStreak >= CurrentStreak after every update, and
// CurrentStreak == 0 whenever LastCompletedAt is nil.
type Habit struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Name                string
	Icon                string
	CategoryID          *uuid.UUID
	Frequency           valueobject.Frequency
	CurrentStreak       int
	LongestStreak       int
	LastCompletedAt     *time.Time
	PreviousStreak      *int
	PreviousCompletedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time // Soft-delete support
}

// NewHabit creates a new Habit with zeroed streak state.
func NewHabit(userID uuid.UUID, name, icon string, categoryID *uuid.UUID, frequency valueobject.Frequency) *Habit {
	now := time.Now().UTC()
	return &Habit{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Icon:       icon,
		CategoryID: categoryID,
		Frequency:  frequency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HabitWithStatus pairs a habit with its completion status for the period
// containing the reference date.
type HabitWithStatus struct {
	Habit     *Habit
	Completed bool
}
