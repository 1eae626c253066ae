package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// ListMoodsInput represents the input for listing mood entries.
type ListMoodsInput struct {
	UserID   uuid.UUID
	StartDay time.Time
	EndDay   time.Time
}

// ListMoodsOutput represents the output of listing mood entries.
type ListMoodsOutput struct {
	Entries      []*MoodEntryOutput
	AverageScore float64
}

// ListMoodsUseCase handles mood listing logic.
type ListMoodsUseCase struct {
	moodRepo adapter.MoodRepository
}

// NewListMoodsUseCase creates a new ListMoodsUseCase instance.
func NewListMoodsUseCase(moodRepo adapter.MoodRepository) *ListMoodsUseCase {
	return &ListMoodsUseCase{moodRepo: moodRepo}
}

// Execute lists the user's mood entries between two days, inclusive, with the
// average score over the range.
func (uc *ListMoodsUseCase) Execute(ctx context.Context, input ListMoodsInput) (*ListMoodsOutput, error) {
	if input.EndDay.Before(input.StartDay) {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidMoodRange,
			"end day must not precede start day",
			domainerror.ErrInvalidMoodRange,
		)
	}

	entries, err := uc.moodRepo.FindByUserInRange(ctx, input.UserID, input.StartDay, input.EndDay)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	output := &ListMoodsOutput{Entries: make([]*MoodEntryOutput, 0, len(entries))}
	sum := 0
	for _, e := range entries {
		output.Entries = append(output.Entries, toMoodEntryOutput(e))
		sum += e.Score
	}
	if len(entries) > 0 {
		output.AverageScore = float64(sum) / float64(len(entries))
	}
	return output, nil
}
