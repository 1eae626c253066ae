package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// AddItemInput represents the input for adding a shopping item.
type AddItemInput struct {
	UserID          uuid.UUID
	ListID          uuid.UUID
	Name            string
	EstimatedAmount decimal.Decimal
	CategoryID      *uuid.UUID
}

// AddItemOutput represents the output of adding a shopping item.
type AddItemOutput struct {
	Item *ShoppingItemOutput
}

// AddItemUseCase handles adding items to a shopping list.
type AddItemUseCase struct {
	shoppingRepo adapter.ShoppingRepository
	categoryRepo adapter.CategoryRepository
}

// NewAddItemUseCase creates a new AddItemUseCase instance.
func NewAddItemUseCase(shoppingRepo adapter.ShoppingRepository, categoryRepo adapter.CategoryRepository) *AddItemUseCase {
	return &AddItemUseCase{
		shoppingRepo: shoppingRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute adds an item to the list.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeMissingShoppingFields,
			"shopping item name is required",
			domainerror.ErrShoppingNameRequired,
		)
	}
	if !input.EstimatedAmount.IsPositive() {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeInvalidItemAmount,
			"estimated amount must be positive",
			domainerror.ErrInvalidItemAmount,
		)
	}

	list, err := uc.shoppingRepo.FindListByID(ctx, input.ListID)
	if err != nil {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeShoppingListNotFound,
			"shopping list not found",
			domainerror.ErrShoppingListNotFound,
		)
	}
	if list.UserID != input.UserID {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeNotAuthorizedShopping,
			"not authorized to modify shopping list",
			domainerror.ErrNotAuthorizedToModifyShopping,
		)
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNotAuthorizedCategory,
				"category does not belong to user",
				domainerror.ErrNotAuthorizedToModifyCategory,
			)
		}
	}

	item := entity.NewShoppingItem(input.ListID, input.UserID, name, input.EstimatedAmount, input.CategoryID)
	if err := uc.shoppingRepo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add shopping item: %w", err)
	}

	return &AddItemOutput{Item: toShoppingItemOutput(item)}, nil
}
