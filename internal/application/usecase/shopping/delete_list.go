package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// DeleteListInput represents the input for deleting a shopping list.
type DeleteListInput struct {
	UserID uuid.UUID
	ListID uuid.UUID
}

// DeleteListUseCase handles shopping list deletion logic.
type DeleteListUseCase struct {
	shoppingRepo adapter.ShoppingRepository
}

// NewDeleteListUseCase creates a new DeleteListUseCase instance.
func NewDeleteListUseCase(shoppingRepo adapter.ShoppingRepository) *DeleteListUseCase {
	return &DeleteListUseCase{shoppingRepo: shoppingRepo}
}

// Execute deletes the list and its items. Transactions created by past
// purchases are kept as ledger history.
func (uc *DeleteListUseCase) Execute(ctx context.Context, input DeleteListInput) error {
	list, err := uc.shoppingRepo.FindListByID(ctx, input.ListID)
	if err != nil {
		return domainerror.NewShoppingError(
			domainerror.ErrCodeShoppingListNotFound,
			"shopping list not found",
			domainerror.ErrShoppingListNotFound,
		)
	}
	if list.UserID != input.UserID {
		return domainerror.NewShoppingError(
			domainerror.ErrCodeNotAuthorizedShopping,
			"not authorized to modify shopping list",
			domainerror.ErrNotAuthorizedToModifyShopping,
		)
	}

	if err := uc.shoppingRepo.DeleteList(ctx, input.ListID); err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	return nil
}
