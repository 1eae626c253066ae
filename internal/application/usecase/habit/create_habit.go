package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// MaxHabitNameLength is the maximum allowed length for habit names.
const MaxHabitNameLength = 100

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	UserID     uuid.UUID
	Name       string
	Icon       string
	CategoryID *uuid.UUID
	Frequency  valueobject.Frequency
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *HabitOutput
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo    adapter.HabitRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository, categoryRepo adapter.CategoryRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo:    habitRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNameRequired,
			"habit name is required",
			domainerror.ErrHabitNameRequired,
		)
	}
	if len(name) > MaxHabitNameLength {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNameRequired,
			fmt.Sprintf("habit name must not exceed %d characters", MaxHabitNameLength),
			domainerror.ErrHabitNameRequired,
		)
	}

	if !input.Frequency.Valid() {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be 'daily', 'weekly' or 'monthly'",
			domainerror.ErrInvalidFrequency,
		)
	}

	// Validate category ownership if provided
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
	}

	habit := entity.NewHabit(input.UserID, name, input.Icon, input.CategoryID, input.Frequency)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{Habit: toHabitOutput(habit, time.Now().UTC())}, nil
}
