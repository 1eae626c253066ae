package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
)

// ListHabitsInput represents the input for listing habits.
type ListHabitsInput struct {
	UserID uuid.UUID
	// ReferenceDate is the instant completion status is evaluated against.
	// Zero value means now.
	ReferenceDate time.Time
}

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*HabitOutput
}

// ListHabitsUseCase handles habit listing logic.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository) *ListHabitsUseCase {
	return &ListHabitsUseCase{habitRepo: habitRepo}
}

// Execute lists the user's habits with completion status for the reference
// date's period.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	ref := input.ReferenceDate
	if ref.IsZero() {
		ref = time.Now().UTC()
	}

	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	output := &ListHabitsOutput{Habits: make([]*HabitOutput, 0, len(habits))}
	for _, h := range habits {
		output.Habits = append(output.Habits, toHabitOutput(h, ref))
	}
	return output, nil
}
