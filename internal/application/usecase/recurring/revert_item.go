package recurring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// RevertItemInput represents the input for reverting a settled recurring item.
type RevertItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
}

// RevertItemOutput represents the output of reverting a recurring item.
type RevertItemOutput struct {
	Item *RecurringItemOutput
}

// RevertItemUseCase handles the settled-to-pending transition.
type RevertItemUseCase struct {
	recurringRepo adapter.RecurringRepository
	lockService   adapter.LockService
}

// NewRevertItemUseCase creates a new RevertItemUseCase instance.
func NewRevertItemUseCase(recurringRepo adapter.RecurringRepository, lockService adapter.LockService) *RevertItemUseCase {
	return &RevertItemUseCase{
		recurringRepo: recurringRepo,
		lockService:   lockService,
	}
}

// Execute deletes the transaction created by the settle and clears the
// settled marker, both inside one database transaction. A transaction already
// deleted through another path is tolerated; the marker is cleared anyway.
func (uc *RevertItemUseCase) Execute(ctx context.Context, input RevertItemInput) (*RevertItemOutput, error) {
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
	if item.LastSettledMonth == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeNotSettled,
			"recurring item is not settled",
			domainerror.ErrNotSettled,
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

	month := *item.LastSettledMonth
	if err := uc.recurringRepo.Revert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to revert recurring item: %w", err)
	}

	slog.Info("Recurring item reverted", "itemID", item.ID, "month", month)

	return &RevertItemOutput{Item: toRecurringItemOutput(item)}, nil
}
