package shopping

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// RevertPurchaseInput represents the input for reverting a purchase.
type RevertPurchaseInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
}

// RevertPurchaseOutput represents the output of reverting a purchase.
type RevertPurchaseOutput struct {
	Item *ShoppingItemOutput
}

// RevertPurchaseUseCase handles the purchased-to-unpurchased transition.
type RevertPurchaseUseCase struct {
	shoppingRepo adapter.ShoppingRepository
	lockService  adapter.LockService
}

// NewRevertPurchaseUseCase creates a new RevertPurchaseUseCase instance.
func NewRevertPurchaseUseCase(shoppingRepo adapter.ShoppingRepository, lockService adapter.LockService) *RevertPurchaseUseCase {
	return &RevertPurchaseUseCase{
		shoppingRepo: shoppingRepo,
		lockService:  lockService,
	}
}

// Execute deletes the purchase transaction and clears the item's purchased
// state, both inside one database transaction. A transaction already deleted
// through another path is tolerated.
func (uc *RevertPurchaseUseCase) Execute(ctx context.Context, input RevertPurchaseInput) (*RevertPurchaseOutput, error) {
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
	if !item.Purchased {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeItemNotPurchased,
			"shopping item is not purchased",
			domainerror.ErrItemNotPurchased,
		)
	}

	acquired, err := uc.lockService.AcquireLock(ctx, shoppingLockKey(item.ID), purchaseLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire item lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeItemNotPurchased,
			"another operation on this shopping item is in progress",
			domainerror.ErrItemNotPurchased,
		)
	}
	defer func() {
		if err := uc.lockService.ReleaseLock(ctx, shoppingLockKey(item.ID)); err != nil {
			slog.Warn("Failed to release shopping item lock", "itemID", item.ID, "error", err)
		}
	}()

	if err := uc.shoppingRepo.RevertPurchase(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to revert shopping purchase: %w", err)
	}

	slog.Info("Shopping purchase reverted", "itemID", item.ID)

	return &RevertPurchaseOutput{Item: toShoppingItemOutput(item)}, nil
}
