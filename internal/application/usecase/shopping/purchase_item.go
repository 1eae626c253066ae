package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// purchaseLockTTL bounds how long a purchase or revert may hold the item lock.
const purchaseLockTTL = 10 * time.Second

func shoppingLockKey(itemID uuid.UUID) string {
	return "shopping:item:" + itemID.String()
}

// PurchaseItemInput represents the input for purchasing a shopping item.
type PurchaseItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	// FinalAmount overrides the estimated amount when the real price differs.
	FinalAmount *decimal.Decimal
	// PurchasedAt is the purchase instant. Zero value means now.
	PurchasedAt time.Time
}

// PurchaseItemOutput represents the output of purchasing a shopping item.
type PurchaseItemOutput struct {
	Item          *ShoppingItemOutput
	TransactionID uuid.UUID
}

// PurchaseItemUseCase handles the unpurchased-to-purchased transition.
type PurchaseItemUseCase struct {
	shoppingRepo adapter.ShoppingRepository
	lockService  adapter.LockService
}

// NewPurchaseItemUseCase creates a new PurchaseItemUseCase instance.
func NewPurchaseItemUseCase(shoppingRepo adapter.ShoppingRepository, lockService adapter.LockService) *PurchaseItemUseCase {
	return &PurchaseItemUseCase{
		shoppingRepo: shoppingRepo,
		lockService:  lockService,
	}
}

// Execute purchases the item: it creates the expense transaction and stamps
// the item as purchased, both inside one database transaction. The item
// update is conditional, so two concurrent purchases produce exactly one
// transaction; the loser gets ErrItemAlreadyPurchased.
func (uc *PurchaseItemUseCase) Execute(ctx context.Context, input PurchaseItemInput) (*PurchaseItemOutput, error) {
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
	if item.Purchased {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeItemAlreadyPurchased,
			"shopping item already purchased",
			domainerror.ErrItemAlreadyPurchased,
		)
	}
	if input.FinalAmount != nil && !input.FinalAmount.IsPositive() {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeInvalidItemAmount,
			"final amount must be positive",
			domainerror.ErrInvalidItemAmount,
		)
	}

	acquired, err := uc.lockService.AcquireLock(ctx, shoppingLockKey(item.ID), purchaseLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire item lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeItemAlreadyPurchased,
			"another operation on this shopping item is in progress",
			domainerror.ErrItemAlreadyPurchased,
		)
	}
	defer func() {
		if err := uc.lockService.ReleaseLock(ctx, shoppingLockKey(item.ID)); err != nil {
			slog.Warn("Failed to release shopping item lock", "itemID", item.ID, "error", err)
		}
	}()

	purchasedAt := input.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now().UTC()
	}
	item.FinalAmount = input.FinalAmount
	item.PurchasedAt = &purchasedAt

	txn := entity.NewTransaction(
		item.UserID,
		purchasedAt,
		item.Name,
		item.PurchaseAmount(),
		entity.TransactionTypeExpense,
		item.CategoryID,
		nil,
		"",
		entity.TransactionSourceShopping,
	)

	if err := uc.shoppingRepo.Purchase(ctx, item, txn); err != nil {
		if errors.Is(err, domainerror.ErrItemAlreadyPurchased) {
			return nil, domainerror.NewShoppingError(
				domainerror.ErrCodeItemAlreadyPurchased,
				"shopping item already purchased",
				domainerror.ErrItemAlreadyPurchased,
			)
		}
		return nil, fmt.Errorf("failed to purchase shopping item: %w", err)
	}

	slog.Info("Shopping item purchased",
		"itemID", item.ID,
		"amount", txn.Amount,
		"transactionID", txn.ID,
	)

	return &PurchaseItemOutput{
		Item:          toShoppingItemOutput(item),
		TransactionID: txn.ID,
	}, nil
}
