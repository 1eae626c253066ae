package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/integration/persistence/model"
)

// moodRepository implements the adapter.MoodRepository interface.
type moodRepository struct {
	db *gorm.DB
}

// NewMoodRepository creates a new mood repository instance.
func NewMoodRepository(db *gorm.DB) adapter.MoodRepository {
	return &moodRepository{
		db: db,
	}
}

// Create creates a new mood entry in the database.
func (r *moodRepository) Create(ctx context.Context, entry *entity.MoodEntry) error {
	moodModel := model.MoodEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(moodModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndDay retrieves the entry for the calendar day containing day.
func (r *moodRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, day time.Time) (*entity.MoodEntry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	var moodModel model.MoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, dayStart).
		First(&moodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMoodEntryNotFound
		}
		return nil, result.Error
	}
	return moodModel.ToEntity(), nil
}

// FindByUserInRange retrieves all entries for a user between two days, inclusive.
func (r *moodRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, startDay, endDay time.Time) ([]*entity.MoodEntry, error) {
	var moodModels []model.MoodEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND day >= ? AND day <= ?", userID, startDay, endDay).
		Order("day ASC").
		Find(&moodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.MoodEntry, len(moodModels))
	for i, mm := range moodModels {
		entries[i] = mm.ToEntity()
	}
	return entries, nil
}

// Update updates an existing mood entry in the database.
func (r *moodRepository) Update(ctx context.Context, entry *entity.MoodEntry) error {
	moodModel := model.MoodEntryFromEntity(entry)
	result := r.db.WithContext(ctx).
		Model(&model.MoodEntryModel{}).
		Where("id = ?", moodModel.ID).
		Select("score", "note", "updated_at").
		Updates(moodModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMoodEntryNotFound
	}
	return nil
}

// Delete removes a mood entry from the database.
func (r *moodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MoodEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
