package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// settleLockTTL bounds how long a settle or revert may hold the item lock.
const settleLockTTL = 10 * time.Second

func itemLockKey(itemID uuid.UUID) string {
	return "recurring:item:" + itemID.String()
}

// SettleItemInput represents the input for settling a recurring item.
type SettleItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Month  string // "YYYY-MM"
}

// SettleItemOutput represents the output of settling a recurring item.
type SettleItemOutput struct {
	Item          *RecurringItemOutput
	TransactionID uuid.UUID
}

// SettleItemUseCase handles the pending-to-settled transition.
type SettleItemUseCase struct {
	recurringRepo adapter.RecurringRepository
	lockService   adapter.LockService
}

// NewSettleItemUseCase creates a new SettleItemUseCase instance.
func NewSettleItemUseCase(recurringRepo adapter.RecurringRepository, lockService adapter.LockService) *SettleItemUseCase {
	return &SettleItemUseCase{
		recurringRepo: recurringRepo,
		lockService:   lockService,
	}
}

// Execute settles the item for the viewing month: it creates the ledger
// transaction dated on the item's due day and stamps the settled marker, both
// inside one database transaction. The marker update is conditional, so two
// concurrent settles of the same item and month produce exactly one
// transaction; the loser gets ErrAlreadySettled.
func (uc *SettleItemUseCase) Execute(ctx context.Context, input SettleItemInput) (*SettleItemOutput, error) {
	month, err := valueobject.ParseMonthKey(input.Month)
	if err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be in YYYY-MM format",
			err,
		)
	}

	item, err := uc.recurringRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringItemNotFound,
			"recurring item not found",
			domainerror.ErrRecurringItemNotFound,
		)
	}
	if item.UserID != input.UserID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeNotAuthorizedRecurring,
			"not authorized to modify recurring item",
			domainerror.ErrNotAuthorizedToModifyRecurringItem,
		)
	}
	if !item.IsActiveIn(month) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeItemInactiveForMonth,
			"recurring item is not active for this month",
			domainerror.ErrItemInactiveForMonth,
		)
	}
	if item.IsSettledIn(month) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeAlreadySettled,
			"recurring item already settled for this month",
			domainerror.ErrAlreadySettled,
		)
	}

	acquired, err := uc.lockService.AcquireLock(ctx, itemLockKey(item.ID), settleLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire item lock: %w", err)
	}
	if !acquired {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeSettleInProgress,
			"another operation on this recurring item is in progress",
			domainerror.ErrSettleInProgress,
		)
	}
	defer func() {
		if err := uc.lockService.ReleaseLock(ctx, itemLockKey(item.ID)); err != nil {
			slog.Warn("Failed to release recurring item lock", "itemID", item.ID, "error", err)
		}
	}()

	txn := entity.NewTransaction(
		item.UserID,
		month.DateOnDay(item.DayOfMonth),
		item.Name,
		item.Amount,
		item.Type,
		item.CategoryID,
		item.BudgetFocus,
		"",
		entity.TransactionSourceRecurring,
	)

	if err := uc.recurringRepo.Settle(ctx, item, txn, month); err != nil {
		if errors.Is(err, domainerror.ErrAlreadySettled) {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeAlreadySettled,
				"recurring item already settled for this month",
				domainerror.ErrAlreadySettled,
			)
		}
		return nil, fmt.Errorf("failed to settle recurring item: %w", err)
	}

	slog.Info("Recurring item settled",
		"itemID", item.ID,
		"month", month,
		"transactionID", txn.ID,
	)

	return &SettleItemOutput{
		Item:          toRecurringItemOutput(item),
		TransactionID: txn.ID,
	}, nil
}
