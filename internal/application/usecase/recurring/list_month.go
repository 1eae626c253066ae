package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// ListMonthInput represents the input for the reconciled month view.
type ListMonthInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
}

// ListMonthOutput represents the reconciled month view.
type ListMonthOutput struct {
	Month          valueobject.MonthKey
	Pending        []*MonthItemOutput
	Settled        []*MonthItemOutput
	Omitted        []*MonthItemOutput
	PendingExpense decimal.Decimal
	PendingIncome  decimal.Decimal
	SettledExpense decimal.Decimal
	SettledIncome  decimal.Decimal
}

// ListMonthUseCase reconciles the user's recurring items against a viewing month.
type ListMonthUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewListMonthUseCase creates a new ListMonthUseCase instance.
func NewListMonthUseCase(recurringRepo adapter.RecurringRepository) *ListMonthUseCase {
	return &ListMonthUseCase{recurringRepo: recurringRepo}
}

// Execute partitions the user's items into pending, settled and omitted for
// the viewing month. The partition is computed on read; no state is written.
func (uc *ListMonthUseCase) Execute(ctx context.Context, input ListMonthInput) (*ListMonthOutput, error) {
	month, err := valueobject.ParseMonthKey(input.Month)
	if err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be in YYYY-MM format",
			err,
		)
	}

	items, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring items: %w", err)
	}

	view := PartitionByMonth(items, month)

	output := &ListMonthOutput{
		Month:   month,
		Pending: make([]*MonthItemOutput, 0, len(view.Pending)),
		Settled: make([]*MonthItemOutput, 0, len(view.Settled)),
		Omitted: make([]*MonthItemOutput, 0, len(view.Omitted)),
	}
	for _, item := range view.Pending {
		output.Pending = append(output.Pending, toMonthItemOutput(item, month))
	}
	for _, item := range view.Settled {
		output.Settled = append(output.Settled, toMonthItemOutput(item, month))
	}
	for _, item := range view.Omitted {
		output.Omitted = append(output.Omitted, toMonthItemOutput(item, month))
	}
	output.PendingExpense, output.PendingIncome = view.PendingTotals()
	output.SettledExpense, output.SettledIncome = view.SettledTotals()
	return output, nil
}
