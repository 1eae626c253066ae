package shopping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// UpdateItemInput represents the input for updating a shopping item.
// Nil pointer fields are left unchanged.
type UpdateItemInput struct {
	UserID          uuid.UUID
	ItemID          uuid.UUID
	Name            *string
	EstimatedAmount *decimal.Decimal
	CategoryID      *uuid.UUID
}

// UpdateItemOutput represents the output of updating a shopping item.
type UpdateItemOutput struct {
	Item *ShoppingItemOutput
}

// UpdateItemUseCase handles shopping item update logic.
type UpdateItemUseCase struct {
	shoppingRepo adapter.ShoppingRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(shoppingRepo adapter.ShoppingRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{shoppingRepo: shoppingRepo}
}

// Execute performs the shopping item update. A purchased item's estimate can
// still change; the already-created transaction is untouched.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	item, err := uc.shoppingRepo.FindItemByID(ctx, input.ItemID)
	if err != nil {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeShoppingItemNotFound,
			"shopping item not found",
			domainerror.ErrShoppingItemNotFound,
		)
	}
	if item.UserID != input.UserID {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeNotAuthorizedShopping,
			"not authorized to modify shopping list",
			domainerror.ErrNotAuthorizedToModifyShopping,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewShoppingError(
				domainerror.ErrCodeMissingShoppingFields,
				"shopping item name is required",
				domainerror.ErrShoppingNameRequired,
			)
		}
		item.Name = name
	}
	if input.EstimatedAmount != nil {
		if !input.EstimatedAmount.IsPositive() {
			return nil, domainerror.NewShoppingError(
				domainerror.ErrCodeInvalidItemAmount,
				"estimated amount must be positive",
				domainerror.ErrInvalidItemAmount,
			)
		}
		item.EstimatedAmount = *input.EstimatedAmount
	}
	if input.CategoryID != nil {
		item.CategoryID = input.CategoryID
	}

	item.UpdatedAt = time.Now().UTC()
	if err := uc.shoppingRepo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update shopping item: %w", err)
	}

	return &UpdateItemOutput{Item: toShoppingItemOutput(item)}, nil
}
