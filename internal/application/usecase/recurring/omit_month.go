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

// OmitMonthInput represents the input for skipping a recurring item for a month.
type OmitMonthInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Month  string // "YYYY-MM"
}

// OmitMonthOutput represents the output of skipping a month.
type OmitMonthOutput struct {
	Item *RecurringItemOutput
}

// OmitMonthUseCase marks a recurring item as explicitly skipped for one month.
type OmitMonthUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewOmitMonthUseCase creates a new OmitMonthUseCase instance.
func NewOmitMonthUseCase(recurringRepo adapter.RecurringRepository) *OmitMonthUseCase {
	return &OmitMonthUseCase{recurringRepo: recurringRepo}
}

// Execute adds the month to the item's omitted set. Omitting is idempotent,
// and omitting a month the item is already settled for does not undo the
// settle; the settled status keeps precedence until reverted.
func (uc *OmitMonthUseCase) Execute(ctx context.Context, input OmitMonthInput) (*OmitMonthOutput, error) {
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

	if !item.IsOmittedIn(month) {
		item.OmittedMonths = append(item.OmittedMonths, month)
		item.UpdatedAt = time.Now().UTC()
		if err := uc.recurringRepo.Update(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to omit recurring item month: %w", err)
		}
	}

	return &OmitMonthOutput{Item: toRecurringItemOutput(item)}, nil
}
