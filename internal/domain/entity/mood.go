package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mood score bounds.
const (
	MinMoodScore = 1
	MaxMoodScore = 5
)

// MoodEntry records how a user felt on one calendar day. At most one entry
// exists per user per day; recording again the same day updates in place.
type MoodEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Day       time.Time // Midnight UTC of the calendar day
	Score     int       // 1 (worst) to 5 (best)
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMoodEntry creates a new MoodEntry entity for the day containing day.
func NewMoodEntry(userID uuid.UUID, day time.Time, score int, note string) *MoodEntry {
	now := time.Now().UTC()
	return &MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Day:       time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Score:     score,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
