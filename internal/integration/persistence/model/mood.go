package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// MoodEntryModel represents the mood_entries table in the database. The
// unique index on (user_id, day) enforces the one-entry-per-day rule at the
// schema level.
type MoodEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mood_user_day"`
	Day       time.Time `gorm:"type:date;not null;uniqueIndex:idx_mood_user_day"`
	Score     int       `gorm:"not null"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MoodEntryModel.
func (MoodEntryModel) TableName() string {
	return "mood_entries"
}

// ToEntity converts a MoodEntryModel to a domain MoodEntry entity.
func (m *MoodEntryModel) ToEntity() *entity.MoodEntry {
	return &entity.MoodEntry{
		ID:        m.ID,
		UserID:    m.UserID,
		Day:       m.Day,
		Score:     m.Score,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MoodEntryFromEntity creates a MoodEntryModel from a domain MoodEntry entity.
func MoodEntryFromEntity(mood *entity.MoodEntry) *MoodEntryModel {
	return &MoodEntryModel{
		ID:        mood.ID,
		UserID:    mood.UserID,
		Day:       mood.Day,
		Score:     mood.Score,
		Note:      mood.Note,
		CreatedAt: mood.CreatedAt,
		UpdatedAt: mood.UpdatedAt,
	}
}
