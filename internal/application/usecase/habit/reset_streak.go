package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// ResetStreakInput represents the input for resetting a habit's streak.
type ResetStreakInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// ResetStreakOutput represents the output of resetting a habit's streak.
type ResetStreakOutput struct {
	Habit *HabitOutput
}

// ResetStreakUseCase handles the explicit user-triggered streak reset.
type ResetStreakUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewResetStreakUseCase creates a new ResetStreakUseCase instance.
func NewResetStreakUseCase(habitRepo adapter.HabitRepository) *ResetStreakUseCase {
	return &ResetStreakUseCase{habitRepo: habitRepo}
}

// Execute zeroes the streak counters, completion timestamp and undo snapshot.
func (uc *ResetStreakUseCase) Execute(ctx context.Context, input ResetStreakInput) (*ResetStreakOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	if habit.UserID != input.UserID {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeNotAuthorizedHabit,
			"not authorized to modify habit",
			domainerror.ErrNotAuthorizedToModifyHabit,
		)
	}

	ResetStreakState(habit)

	habit.UpdatedAt = time.Now().UTC()
	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to persist streak reset: %w", err)
	}

	return &ResetStreakOutput{Habit: toHabitOutput(habit, time.Now().UTC())}, nil
}
