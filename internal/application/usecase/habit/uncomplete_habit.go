package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// UncompleteHabitInput represents the input for undoing a habit completion.
type UncompleteHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
	// ReferenceDate is the instant the undo is evaluated against.
	// Zero value means now.
	ReferenceDate time.Time
}

// UncompleteHabitOutput represents the output of undoing a habit completion.
type UncompleteHabitOutput struct {
	Habit *HabitOutput
}

// UncompleteHabitUseCase handles undoing the current period's completion.
type UncompleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewUncompleteHabitUseCase creates a new UncompleteHabitUseCase instance.
func NewUncompleteHabitUseCase(habitRepo adapter.HabitRepository) *UncompleteHabitUseCase {
	return &UncompleteHabitUseCase{habitRepo: habitRepo}
}

// Execute restores the pre-completion streak snapshot and persists it in a
// single row update.
func (uc *UncompleteHabitUseCase) Execute(ctx context.Context, input UncompleteHabitInput) (*UncompleteHabitOutput, error) {
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

	now := input.ReferenceDate
	if now.IsZero() {
		now = time.Now().UTC()
	}

	if err := ApplyUncompletion(habit, now); err != nil {
		return nil, err
	}

	habit.UpdatedAt = time.Now().UTC()
	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to persist habit uncompletion: %w", err)
	}

	return &UncompleteHabitOutput{Habit: toHabitOutput(habit, now)}, nil
}
