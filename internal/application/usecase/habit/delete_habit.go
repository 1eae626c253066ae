package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	UserID  uuid.UUID
	HabitID uuid.UUID
}

// DeleteHabitUseCase handles habit deletion logic.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{habitRepo: habitRepo}
}

// Execute performs the habit deletion.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) error {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	if habit.UserID != input.UserID {
		return domainerror.NewHabitError(
			domainerror.ErrCodeNotAuthorizedHabit,
			"not authorized to modify habit",
			domainerror.ErrNotAuthorizedToModifyHabit,
		)
	}

	if err := uc.habitRepo.Delete(ctx, input.HabitID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}
