package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// RestoreMonthInput represents the input for un-skipping a month.
type RestoreMonthInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Month  string // "YYYY-MM"
}

// RestoreMonthOutput represents the output of un-skipping a month.
type RestoreMonthOutput struct {
	Item *RecurringItemOutput
}

// RestoreMonthUseCase removes a month from a recurring item's omitted set.
type RestoreMonthUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewRestoreMonthUseCase creates a new RestoreMonthUseCase instance.
func NewRestoreMonthUseCase(recurringRepo adapter.RecurringRepository) *RestoreMonthUseCase {
	return &RestoreMonthUseCase{recurringRepo: recurringRepo}
}

// Execute removes the month from the omitted set, returning the item to
// pending for that month. Restoring a month that was never omitted is a no-op.
func (uc *RestoreMonthUseCase) Execute(ctx context.Context, input RestoreMonthInput) (*RestoreMonthOutput, error) {
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

	if item.IsOmittedIn(month) {
		kept := item.OmittedMonths[:0]
		for _, m := range item.OmittedMonths {
			if m != month {
				kept = append(kept, m)
			}
		}
		item.OmittedMonths = kept
		item.UpdatedAt = time.Now().UTC()
		if err := uc.recurringRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to restore recurring item month: %w", err)
		}
	}

	return &RestoreMonthOutput{Item: toRecurringItemOutput(item)}, nil
}
