package dto

import (
	"time"

	"github.com/lifeledger/backend/internal/application/usecase/habit"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=100"`
	Icon       string  `json:"icon,omitempty" binding:"omitempty,max=50"`
	CategoryID *string `json:"category_id,omitempty"`
	Frequency  string  `json:"frequency" binding:"required,oneof=daily weekly monthly"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Name       *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Icon       *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	CategoryID *string `json:"category_id,omitempty"`
}

// HabitResponse represents a habit in API responses.
type HabitResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Icon            string     `json:"icon"`
	CategoryID      *string    `json:"category_id,omitempty"`
	Frequency       string     `json:"frequency"`
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	Completed       bool       `json:"completed"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// ToHabitResponse converts a HabitOutput to a HabitResponse DTO.
func ToHabitResponse(h *habit.HabitOutput) HabitResponse {
	response := HabitResponse{
		ID:              h.ID.String(),
		UserID:          h.UserID.String(),
		Name:            h.Name,
		Icon:            h.Icon,
		Frequency:       string(h.Frequency),
		CurrentStreak:   h.CurrentStreak,
		LongestStreak:   h.LongestStreak,
		LastCompletedAt: h.LastCompletedAt,
		Completed:       h.Completed,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
	if h.CategoryID != nil {
		id := h.CategoryID.String()
		response.CategoryID = &id
	}
	return response
}

// ToHabitListResponse converts HabitOutputs to a HabitListResponse DTO.
func ToHabitListResponse(habits []*habit.HabitOutput) HabitListResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		responses[i] = ToHabitResponse(h)
	}
	return HabitListResponse{Habits: responses}
}
