package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// DeleteItemInput represents the input for deleting a shopping item.
type DeleteItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
}

// DeleteItemUseCase handles shopping item deletion logic.
type DeleteItemUseCase struct {
	shoppingRepo adapter.ShoppingRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(shoppingRepo adapter.ShoppingRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{shoppingRepo: shoppingRepo}
}

// Execute deletes the item. A purchased item's transaction is kept; deleting
// the item does not undo the purchase.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) error {
	item, err := uc.shoppingRepo.FindItemByID(ctx, input.ItemID)
	if err != nil {
		return domainerror.NewShoppingError(
			domainerror.ErrCodeShoppingItemNotFound,
			"shopping item not found",
			domainerror.ErrShoppingItemNotFound,
		)
	}
	if item.UserID != input.UserID {
		return domainerror.NewShoppingError(
			domainerror.ErrCodeNotAuthorizedShopping,
			"not authorized to modify shopping list",
			domainerror.ErrNotAuthorizedToModifyShopping,
		)
	}

	if err := uc.shoppingRepo.DeleteItem(ctx, input.ItemID); err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	return nil
}
