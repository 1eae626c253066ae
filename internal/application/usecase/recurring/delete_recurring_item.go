package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// DeleteRecurringItemInput represents the input for recurring item deletion.
type DeleteRecurringItemInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
}

// DeleteRecurringItemUseCase handles recurring item deletion logic.
type DeleteRecurringItemUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringItemUseCase creates a new DeleteRecurringItemUseCase instance.
func NewDeleteRecurringItemUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringItemUseCase {
	return &DeleteRecurringItemUseCase{recurringRepo: recurringRepo}
}

// Execute deletes the recurring item definition. Transactions created by past
// settles are kept; they remain valid ledger history.
func (uc *DeleteRecurringItemUseCase) Execute(ctx context.Context, input DeleteRecurringItemInput) error {
	item, err := uc.recurringRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringItemNotFound,
			"recurring item not found",
			domainerror.ErrRecurringItemNotFound,
		)
	}
	if item.UserID != input.UserID {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeNotAuthorizedRecurring,
			"not authorized to modify recurring item",
			domainerror.ErrNotAuthorizedToModifyRecurringItem,
		)
	}

	if err := uc.recurringRepo.Delete(ctx, input.ItemID); err != nil {
		return fmt.Errorf("failed to delete recurring item: %w", err)
	}
	return nil
}
