package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// CompleteHabitInput represents the input for completing a habit.
type CompleteHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	// CompletedAt is the completion instant. Zero value means now.
	CompletedAt time.Time
}

// CompleteHabitOutput represents the output of completing a habit.
type CompleteHabitOutput struct {
	Habit *HabitOutput
}

// CompleteHabitUseCase handles marking a habit completed for the current period.
type CompleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewCompleteHabitUseCase creates a new CompleteHabitUseCase instance.
func NewCompleteHabitUseCase(habitRepo adapter.HabitRepository) *CompleteHabitUseCase {
	return &CompleteHabitUseCase{habitRepo: habitRepo}
}

// Execute recomputes the streak for a new completion and persists all streak
// fields plus the undo snapshot in a single row update.
func (uc *CompleteHabitUseCase) Execute(ctx context.Context, input CompleteHabitInput) (*CompleteHabitOutput, error) {
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

	now := input.CompletedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if err := ApplyCompletion(habit, now); err != nil {
		return nil, err
	}

	habit.UpdatedAt = time.Now().UTC()
	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to persist habit completion: %w", err)
	}

	return &CompleteHabitOutput{Habit: toHabitOutput(habit, now)}, nil
}
