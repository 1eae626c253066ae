package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShoppingList groups shopping items under a name.
type ShoppingList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewShoppingList creates a new ShoppingList entity.
func NewShoppingList(userID uuid.UUID, name string) *ShoppingList {
	now := time.Now().UTC()
	return &ShoppingList{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ShoppingItem represents one entry on a shopping list. Purchasing an item
// creates a transaction and stamps TransactionID, mirroring the recurring
// settle transition.
type ShoppingItem struct {
	ID              uuid.UUID
	ListID          uuid.UUID
	UserID          uuid.UUID
	Name            string
	EstimatedAmount decimal.Decimal
	FinalAmount     *decimal.Decimal // Set on purchase when the real price differs
	CategoryID      *uuid.UUID
	Purchased       bool
	PurchasedAt     *time.Time
	TransactionID   *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewShoppingItem creates a new ShoppingItem entity.
func NewShoppingItem(listID, userID uuid.UUID, name string, estimatedAmount decimal.Decimal, categoryID *uuid.UUID) *ShoppingItem {
	now := time.Now().UTC()
	return &ShoppingItem{
		ID:              uuid.New(),
		ListID:          listID,
		UserID:          userID,
		Name:            name,
		EstimatedAmount: estimatedAmount,
		CategoryID:      categoryID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// PurchaseAmount returns the amount the purchase transaction should carry:
// the final price when recorded, the estimate otherwise.
func (i *ShoppingItem) PurchaseAmount() decimal.Decimal {
	if i.FinalAmount != nil {
		return *i.FinalAmount
	}
	return i.EstimatedAmount
}

// ShoppingListWithItems pairs a list with its items.
type ShoppingListWithItems struct {
	List  *ShoppingList
	Items []*ShoppingItem
}
