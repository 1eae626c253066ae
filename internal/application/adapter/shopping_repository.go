package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// ShoppingRepository defines the interface for shopping list persistence operations.
type ShoppingRepository interface {
	// CreateList creates a new shopping list in the database.
	CreateList(ctx context.Context, list *entity.ShoppingList) error

	// FindListByID retrieves a shopping list by its ID.
	FindListByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error)

	// FindListsByUser retrieves all shopping lists for a user with their items.
	FindListsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingListWithItems, error)

	// DeleteList soft-deletes a shopping list and its items.
	DeleteList(ctx context.Context, id uuid.UUID) error

	// CreateItem creates a new shopping item in the database.
	CreateItem(ctx context.Context, item *entity.ShoppingItem) error

	// FindItemByID retrieves a shopping item by its ID.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingItem, error)

	// UpdateItem updates an existing shopping item in the database.
	UpdateItem(ctx context.Context, item *entity.ShoppingItem) error

	// DeleteItem soft-deletes a shopping item.
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// Purchase atomically creates the transaction and stamps the item as
	// purchased with its TransactionID. The item update is conditional on
	// the item not being purchased yet; a lost race returns
	// domainerror.ErrItemAlreadyPurchased and leaves no transaction behind.
	Purchase(ctx context.Context, item *entity.ShoppingItem, txn *entity.Transaction) error

	// RevertPurchase atomically deletes the purchase transaction and clears
	// the item's purchased state. A transaction that is already gone is
	// tolerated; the dangling pointer is still cleared.
	RevertPurchase(ctx context.Context, item *entity.ShoppingItem) error
}
