// Package budget contains the 50/30/20 budget breakdown use case.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// Target shares of income under the 50/30/20 split.
var targetShares = map[valueobject.BudgetFocus]decimal.Decimal{
	valueobject.BudgetFocusNeeds:   decimal.NewFromFloat(0.50),
	valueobject.BudgetFocusWants:   decimal.NewFromFloat(0.30),
	valueobject.BudgetFocusSavings: decimal.NewFromFloat(0.20),
}

// GetBreakdownInput represents the input for the budget breakdown.
type GetBreakdownInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
}

// FocusBreakdown is one focus bucket of the breakdown.
type FocusBreakdown struct {
	Focus  valueobject.BudgetFocus
	Spent  decimal.Decimal
	Target decimal.Decimal // Target amount derived from the month's income
	// ShareOfIncome is spent/income as a percentage, zero when no income.
	ShareOfIncome decimal.Decimal
}

// GetBreakdownOutput represents the budget breakdown for one month.
type GetBreakdownOutput struct {
	Month    valueobject.MonthKey
	Income   decimal.Decimal
	Focuses  []FocusBreakdown
	Untagged decimal.Decimal // Expenses carrying no focus tag
}

// GetBreakdownUseCase derives the monthly 50/30/20 view from transactions.
// Nothing is stored; the breakdown is recomputed on every read.
type GetBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{transactionRepo: transactionRepo}
}

// Execute computes the breakdown for the month.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, input GetBreakdownInput) (*GetBreakdownOutput, error) {
	month, err := valueobject.ParseMonthKey(input.Month)
	if err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidMonthKey,
			"month must be in YYYY-MM format",
			err,
		)
	}

	start := month.Start()
	end := month.End()

	totals, err := uc.transactionRepo.GetTotals(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute month totals: %w", err)
	}

	focusTotals, err := uc.transactionRepo.SumExpensesByFocus(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by focus: %w", err)
	}

	byFocus := map[valueobject.BudgetFocus]decimal.Decimal{}
	tagged := decimal.Zero
	for _, ft := range focusTotals {
		byFocus[ft.Focus] = ft.Total
		tagged = tagged.Add(ft.Total)
	}

	output := &GetBreakdownOutput{
		Month:    month,
		Income:   totals.IncomeTotal,
		Untagged: totals.ExpenseTotal.Sub(tagged),
	}
	hundred := decimal.NewFromInt(100)
	for _, focus := range valueobject.BudgetFocuses() {
		spent := byFocus[focus]
		fb := FocusBreakdown{
			Focus:  focus,
			Spent:  spent,
			Target: totals.IncomeTotal.Mul(targetShares[focus]),
		}
		if totals.IncomeTotal.IsPositive() {
			fb.ShareOfIncome = spent.Div(totals.IncomeTotal).Mul(hundred).Round(2)
		}
		output.Focuses = append(output.Focuses, fb)
	}
	return output, nil
}
