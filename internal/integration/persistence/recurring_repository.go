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
	"github.com/lifeledger/backend/internal/domain/valueobject"
	"github.com/lifeledger/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring item repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create creates a new recurring item in the database.
func (r *recurringRepository) Create(ctx context.Context, item *entity.RecurringItem) error {
	itemModel := model.RecurringItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring item by its ID.
func (r *recurringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringItem, error) {
	var itemModel model.RecurringItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByUser retrieves all recurring items for a given user.
func (r *recurringRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringItem, error) {
	var itemModels []model.RecurringItemModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_month ASC, name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.RecurringItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing recurring item in the database.
func (r *recurringRepository) Update(ctx context.Context, item *entity.RecurringItem) error {
	itemModel := model.RecurringItemFromEntity(item)
	result := r.db.WithContext(ctx).
		Model(&model.RecurringItemModel{}).
		Where("id = ?", itemModel.ID).
		Select("name", "amount", "category_id", "budget_focus", "day_of_month",
			"active_months", "omitted_months", "updated_at").
		Updates(itemModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringItemNotFound
	}
	return nil
}

// Delete soft-deletes a recurring item. Transactions created by past settles
// are left untouched.
func (r *recurringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Settle creates the transaction and stamps the item's settled markers in one
// database transaction. The item update is conditional on the month not being
// settled yet: when a concurrent settle got there first, zero rows match, the
// transaction rolls back and domainerror.ErrAlreadySettled is returned.
func (r *recurringRepository) Settle(ctx context.Context, item *entity.RecurringItem, txn *entity.Transaction, month valueobject.MonthKey) error {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(txn)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.RecurringItemModel{}).
			Where("id = ? AND (last_settled_month IS NULL OR last_settled_month <> ?)", item.ID, month.String()).
			Updates(map[string]interface{}{
				"last_settled_month":  month.String(),
				"last_transaction_id": txn.ID,
				"updated_at":          now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrAlreadySettled
		}
		return nil
	})
	if err != nil {
		return err
	}

	settledMonth := month
	item.LastSettledMonth = &settledMonth
	item.LastTransactionID = &txn.ID
	item.UpdatedAt = now
	return nil
}

// Revert deletes the settled transaction and clears the item's settled
// markers in one database transaction. A transaction that is already gone is
// tolerated so a dangling pointer can still be cleaned up.
func (r *recurringRepository) Revert(ctx context.Context, item *entity.RecurringItem) error {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.LastTransactionID != nil {
			if err := tx.Delete(&model.TransactionModel{}, "id = ?", *item.LastTransactionID).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&model.RecurringItemModel{}).
			Where("id = ? AND last_settled_month IS NOT NULL", item.ID).
			Updates(map[string]interface{}{
				"last_settled_month":  nil,
				"last_transaction_id": nil,
				"updated_at":          now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrNotSettled
		}
		return nil
	})
	if err != nil {
		return err
	}

	item.LastSettledMonth = nil
	item.LastTransactionID = nil
	item.UpdatedAt = now
	return nil
}
