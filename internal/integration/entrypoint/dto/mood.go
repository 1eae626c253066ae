package dto

import (
	"time"

	"github.com/lifeledger/backend/internal/application/usecase/mood"
)

// RecordMoodRequest represents the request body for recording a mood.
type RecordMoodRequest struct {
	Day   string `json:"day,omitempty"`
	Score int    `json:"score" binding:"required,min=1,max=5"`
	Note  string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// MoodEntryResponse represents a mood entry in API responses.
type MoodEntryResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Day       string    `json:"day"`
	Score     int       `json:"score"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MoodListResponse represents the response for listing mood entries.
type MoodListResponse struct {
	Entries      []MoodEntryResponse `json:"entries"`
	AverageScore float64             `json:"average_score"`
}

// ToMoodEntryResponse converts a MoodEntryOutput to a MoodEntryResponse DTO.
func ToMoodEntryResponse(entry *mood.MoodEntryOutput) MoodEntryResponse {
	return MoodEntryResponse{
		ID:        entry.ID.String(),
		UserID:    entry.UserID.String(),
		Day:       entry.Day.Format("2006-01-02"),
		Score:     entry.Score,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToMoodListResponse converts a ListMoodsOutput to a MoodListResponse DTO.
func ToMoodListResponse(output *mood.ListMoodsOutput) MoodListResponse {
	entries := make([]MoodEntryResponse, len(output.Entries))
	for i, entry := range output.Entries {
		entries[i] = ToMoodEntryResponse(entry)
	}
	return MoodListResponse{
		Entries:      entries,
		AverageScore: output.AverageScore,
	}
}
