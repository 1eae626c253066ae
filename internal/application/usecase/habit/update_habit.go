package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// UpdateHabitInput represents the input for habit update. Nil pointer fields
// are left unchanged.
type UpdateHabitInput struct {
	UserID     uuid.UUID
	HabitID    uuid.UUID
	Name       *string
	Icon       *string
	CategoryID *uuid.UUID
	Frequency  *valueobject.Frequency
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit *HabitOutput
}

// UpdateHabitUseCase handles habit update logic.
type UpdateHabitUseCase struct {
	habitRepo    adapter.HabitRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(habitRepo adapter.HabitRepository, categoryRepo adapter.CategoryRepository) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo:    habitRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the habit update. Changing the frequency keeps the streak
// counters as they are; the next completion re-evaluates consecutiveness
// under the new frequency.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNameRequired,
				"habit name is required",
				domainerror.ErrHabitNameRequired,
			)
		}
		habit.Name = name
	}
	if input.Icon != nil {
		habit.Icon = *input.Icon
	}
	if input.Frequency != nil {
		if !input.Frequency.Valid() {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidFrequency,
				"frequency must be 'daily', 'weekly' or 'monthly'",
				domainerror.ErrInvalidFrequency,
			)
		}
		habit.Frequency = *input.Frequency
	}
	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNotAuthorizedCategory,
				"category does not belong to user",
				domainerror.ErrNotAuthorizedToModifyCategory,
			)
		}
		habit.CategoryID = input.CategoryID
	}

	habit.UpdatedAt = time.Now().UTC()
	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return &UpdateHabitOutput{Habit: toHabitOutput(habit, time.Now().UTC())}, nil
}
