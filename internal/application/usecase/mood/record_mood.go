// Package mood contains mood tracking use cases.
package mood

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// RecordMoodInput represents the input for recording a mood.
type RecordMoodInput struct {
	UserID uuid.UUID
	Day    time.Time // Any instant within the calendar day. Zero value means today.
	Score  int
	Note   string
}

// MoodEntryOutput represents a mood entry in use case outputs.
type MoodEntryOutput struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Day       time.Time
	Score     int
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecordMoodOutput represents the output of recording a mood.
type RecordMoodOutput struct {
	Entry *MoodEntryOutput
}

// RecordMoodUseCase handles mood recording logic.
type RecordMoodUseCase struct {
	moodRepo adapter.MoodRepository
}

// NewRecordMoodUseCase creates a new RecordMoodUseCase instance.
func NewRecordMoodUseCase(moodRepo adapter.MoodRepository) *RecordMoodUseCase {
	return &RecordMoodUseCase{moodRepo: moodRepo}
}

// Execute records the mood for the day. Recording twice for the same day
// updates the existing entry in place; one entry per user per day.
func (uc *RecordMoodUseCase) Execute(ctx context.Context, input RecordMoodInput) (*RecordMoodOutput, error) {
	if input.Score < entity.MinMoodScore || input.Score > entity.MaxMoodScore {
		return nil, domainerror.NewMoodError(
			domainerror.ErrCodeInvalidMoodScore,
			fmt.Sprintf("mood score must be between %d and %d", entity.MinMoodScore, entity.MaxMoodScore),
			domainerror.ErrInvalidMoodScore,
		)
	}

	day := input.Day
	if day.IsZero() {
		day = time.Now().UTC()
	}

	existing, err := uc.moodRepo.FindByUserAndDay(ctx, input.UserID, day)
	switch {
	case err == nil:
		existing.Score = input.Score
		existing.Note = input.Note
		existing.UpdatedAt = time.Now().UTC()
		if err := uc.moodRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update mood entry: %w", err)
		}
		return &RecordMoodOutput{Entry: toMoodEntryOutput(existing)}, nil
	case errors.Is(err, domainerror.ErrMoodEntryNotFound):
		entry := entity.NewMoodEntry(input.UserID, day, input.Score, input.Note)
		if err := uc.moodRepo.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to create mood entry: %w", err)
		}
		return &RecordMoodOutput{Entry: toMoodEntryOutput(entry)}, nil
	default:
		return nil, fmt.Errorf("failed to look up mood entry: %w", err)
	}
}

func toMoodEntryOutput(e *entity.MoodEntry) *MoodEntryOutput {
	return &MoodEntryOutput{
		ID:        e.ID,
		UserID:    e.UserID,
		Day:       e.Day,
		Score:     e.Score,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
