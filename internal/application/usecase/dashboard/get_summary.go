// Package dashboard contains the monthly summary use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/application/usecase/habit"
	"github.com/lifeledger/backend/internal/application/usecase/recurring"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  string // "YYYY-MM"
}

// CategorySpending is one slice of the per-category expense chart.
type CategorySpending struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// GetSummaryOutput aggregates the month's numbers for the dashboard.
type GetSummaryOutput struct {
	Month            valueobject.MonthKey
	IncomeTotal      decimal.Decimal
	ExpenseTotal     decimal.Decimal
	NetTotal         decimal.Decimal
	SpendingByCat    []CategorySpending
	PendingRecurring int
	SettledRecurring int
	HabitsTotal      int
	HabitsCompleted  int
}

// GetSummaryUseCase composes the dashboard from the other aggregates.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	recurringRepo   adapter.RecurringRepository
	habitRepo       adapter.HabitRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	recurringRepo adapter.RecurringRepository,
	habitRepo adapter.HabitRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		recurringRepo:   recurringRepo,
		habitRepo:       habitRepo,
	}
}

// Execute computes the summary for the month. Habit completion is evaluated
// against now when the viewing month is the current month, otherwise against
// the month's last day.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
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

	categoryTotals, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}

	items, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring items: %w", err)
	}
	view := recurring.PartitionByMonth(items, month)

	habits, err := uc.habitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	ref := time.Now().UTC()
	if valueobject.MonthKeyFor(ref) != month {
		ref = end
	}

	output := &GetSummaryOutput{
		Month:            month,
		IncomeTotal:      totals.IncomeTotal,
		ExpenseTotal:     totals.ExpenseTotal,
		NetTotal:         totals.NetTotal,
		PendingRecurring: len(view.Pending),
		SettledRecurring: len(view.Settled),
		HabitsTotal:      len(habits),
	}
	for _, ct := range categoryTotals {
		output.SpendingByCat = append(output.SpendingByCat, CategorySpending{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Total:        ct.Total,
		})
	}
	for _, h := range habits {
		if habit.CompletedInPeriod(h, ref) {
			output.HabitsCompleted++
		}
	}
	return output, nil
}
