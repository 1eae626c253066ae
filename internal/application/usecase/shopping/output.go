// Package shopping contains shopping list use cases.
package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// ShoppingItemOutput represents a shopping item in use case outputs.
type ShoppingItemOutput struct {
	ID              uuid.UUID
	ListID          uuid.UUID
	Name            string
	EstimatedAmount decimal.Decimal
	FinalAmount     *decimal.Decimal
	CategoryID      *uuid.UUID
	Purchased       bool
	PurchasedAt     *time.Time
	TransactionID   *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ShoppingListOutput represents a shopping list with its items and totals.
type ShoppingListOutput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Items          []*ShoppingItemOutput
	EstimatedTotal decimal.Decimal
	PurchasedTotal decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toShoppingItemOutput(item *entity.ShoppingItem) *ShoppingItemOutput {
	return &ShoppingItemOutput{
		ID:              item.ID,
		ListID:          item.ListID,
		Name:            item.Name,
		EstimatedAmount: item.EstimatedAmount,
		FinalAmount:     item.FinalAmount,
		CategoryID:      item.CategoryID,
		Purchased:       item.Purchased,
		PurchasedAt:     item.PurchasedAt,
		TransactionID:   item.TransactionID,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func toShoppingListOutput(list *entity.ShoppingList, items []*entity.ShoppingItem) *ShoppingListOutput {
	out := &ShoppingListOutput{
		ID:        list.ID,
		UserID:    list.UserID,
		Name:      list.Name,
		Items:     make([]*ShoppingItemOutput, 0, len(items)),
		CreatedAt: list.CreatedAt,
		UpdatedAt: list.UpdatedAt,
	}
	for _, item := range items {
		out.Items = append(out.Items, toShoppingItemOutput(item))
		out.EstimatedTotal = out.EstimatedTotal.Add(item.EstimatedAmount)
		if item.Purchased {
			out.PurchasedTotal = out.PurchasedTotal.Add(item.PurchaseAmount())
		}
	}
	return out
}
