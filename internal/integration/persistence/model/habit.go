package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(100);not null"`
	Icon                string         `gorm:"type:varchar(50)"`
	CategoryID          *uuid.UUID     `gorm:"type:uuid;index"`
	Frequency           string         `gorm:"type:varchar(10);not null"`
	CurrentStreak       int            `gorm:"not null;default:0"`
	LongestStreak       int            `gorm:"not null;default:0"`
	LastCompletedAt     *time.Time     `gorm:"type:timestamptz"`
	PreviousStreak      *int           `gorm:"type:integer"`
	PreviousCompletedAt *time.Time     `gorm:"type:timestamptz"`
	CreatedAt           time.Time      `gorm:"not null"`
	UpdatedAt           time.Time      `gorm:"not null"`
	DeletedAt           gorm.DeletedAt `gorm:"index"` // Soft-delete support

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Habit{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		Icon:                m.Icon,
		CategoryID:          m.CategoryID,
		Frequency:           valueobject.Frequency(m.Frequency),
		CurrentStreak:       m.CurrentStreak,
		LongestStreak:       m.LongestStreak,
		LastCompletedAt:     m.LastCompletedAt,
		PreviousStreak:      m.PreviousStreak,
		PreviousCompletedAt: m.PreviousCompletedAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	var deletedAt gorm.DeletedAt
	if habit.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *habit.DeletedAt, Valid: true}
	}

	return &HabitModel{
		ID:                  habit.ID,
		UserID:              habit.UserID,
		Name:                habit.Name,
		Icon:                habit.Icon,
		CategoryID:          habit.CategoryID,
		Frequency:           string(habit.Frequency),
		CurrentStreak:       habit.CurrentStreak,
		LongestStreak:       habit.LongestStreak,
		LastCompletedAt:     habit.LastCompletedAt,
		PreviousStreak:      habit.PreviousStreak,
		PreviousCompletedAt: habit.PreviousCompletedAt,
		CreatedAt:           habit.CreatedAt,
		UpdatedAt:           habit.UpdatedAt,
		DeletedAt:           deletedAt,
	}
}
