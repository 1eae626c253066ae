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

// shoppingRepository implements the adapter.ShoppingRepository interface.
type shoppingRepository struct {
	db *gorm.DB
}

// NewShoppingRepository creates a new shopping repository instance.
func NewShoppingRepository(db *gorm.DB) adapter.ShoppingRepository {
	return &shoppingRepository{
		db: db,
	}
}

// CreateList creates a new shopping list in the database.
func (r *shoppingRepository) CreateList(ctx context.Context, list *entity.ShoppingList) error {
	listModel := model.ShoppingListFromEntity(list)
	result := r.db.WithContext(ctx).Create(listModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindListByID retrieves a shopping list by its ID.
func (r *shoppingRepository) FindListByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	var listModel model.ShoppingListModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&listModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrShoppingListNotFound
		}
		return nil, result.Error
	}
	return listModel.ToEntity(), nil
}

// FindListsByUser retrieves all shopping lists for a user with their items.
func (r *shoppingRepository) FindListsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingListWithItems, error) {
	var listModels []model.ShoppingListModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&listModels)
	if result.Error != nil {
		return nil, result.Error
	}

	lists := make([]*entity.ShoppingListWithItems, len(listModels))
	for i, lm := range listModels {
		var itemModels []model.ShoppingItemModel
		result := r.db.WithContext(ctx).
			Where("list_id = ?", lm.ID).
			Order("created_at ASC").
			Find(&itemModels)
		if result.Error != nil {
			return nil, result.Error
		}

		items := make([]*entity.ShoppingItem, len(itemModels))
		for j, im := range itemModels {
			items[j] = im.ToEntity()
		}
		lists[i] = &entity.ShoppingListWithItems{
			List:  lm.ToEntity(),
			Items: items,
		}
	}
	return lists, nil
}

// DeleteList soft-deletes a shopping list and its items in one database
// transaction. Purchase transactions of the items are left untouched.
func (r *shoppingRepository) DeleteList(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ShoppingItemModel{}, "list_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.ShoppingListModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrShoppingListNotFound
		}
		return nil
	})
}

// CreateItem creates a new shopping item in the database.
func (r *shoppingRepository) CreateItem(ctx context.Context, item *entity.ShoppingItem) error {
	itemModel := model.ShoppingItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindItemByID retrieves a shopping item by its ID.
func (r *shoppingRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingItem, error) {
	var itemModel model.ShoppingItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrShoppingItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// UpdateItem updates an existing shopping item in the database.
func (r *shoppingRepository) UpdateItem(ctx context.Context, item *entity.ShoppingItem) error {
	itemModel := model.ShoppingItemFromEntity(item)
	result := r.db.WithContext(ctx).
		Model(&model.ShoppingItemModel{}).
		Where("id = ?", itemModel.ID).
		Select("name", "estimated_amount", "final_amount", "category_id", "updated_at").
		Updates(itemModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrShoppingItemNotFound
	}
	return nil
}

// DeleteItem soft-deletes a shopping item. The purchase transaction, if any,
// stays in the ledger.
func (r *shoppingRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ShoppingItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Purchase creates the transaction and stamps the item as purchased in one
// database transaction. The item update is conditional on the item not being
// purchased yet: when a concurrent purchase got there first, zero rows match,
// the transaction rolls back and domainerror.ErrItemAlreadyPurchased is
// returned.
func (r *shoppingRepository) Purchase(ctx context.Context, item *entity.ShoppingItem, txn *entity.Transaction) error {
	now := time.Now().UTC()

	var finalAmount interface{}
	if item.FinalAmount != nil {
		finalAmount = *item.FinalAmount
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(txn)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.ShoppingItemModel{}).
			Where("id = ? AND purchased = ?", item.ID, false).
			Updates(map[string]interface{}{
				"purchased":      true,
				"purchased_at":   now,
				"final_amount":   finalAmount,
				"transaction_id": txn.ID,
				"updated_at":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrItemAlreadyPurchased
		}
		return nil
	})
	if err != nil {
		return err
	}

	item.Purchased = true
	item.PurchasedAt = &now
	item.TransactionID = &txn.ID
	item.UpdatedAt = now
	return nil
}

// RevertPurchase deletes the purchase transaction and clears the item's
// purchased state in one database transaction. A transaction that is already
// gone is tolerated so a dangling pointer can still be cleaned up.
func (r *shoppingRepository) RevertPurchase(ctx context.Context, item *entity.ShoppingItem) error {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.TransactionID != nil {
			if err := tx.Delete(&model.TransactionModel{}, "id = ?", *item.TransactionID).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&model.ShoppingItemModel{}).
			Where("id = ? AND purchased = ?", item.ID, true).
			Updates(map[string]interface{}{
				"purchased":      false,
				"purchased_at":   nil,
				"final_amount":   nil,
				"transaction_id": nil,
				"updated_at":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrItemNotPurchased
		}
		return nil
	})
	if err != nil {
		return err
	}

	item.Purchased = false
	item.PurchasedAt = nil
	item.FinalAmount = nil
	item.TransactionID = nil
	item.UpdatedAt = now
	return nil
}
