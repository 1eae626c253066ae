package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

type fakeTransactionRepo struct {
	totals         *entity.TransactionTotals
	categoryTotals []adapter.CategoryTotal
}

func (r *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) FindByFilter(context.Context, adapter.TransactionFilter, adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return &adapter.TransactionListResult{}, nil
}
func (r *fakeTransactionRepo) GetTotals(context.Context, adapter.TransactionFilter) (*entity.TransactionTotals, error) {
	return r.totals, nil
}
func (r *fakeTransactionRepo) SumExpensesByCategory(context.Context, uuid.UUID, time.Time, time.Time) ([]adapter.CategoryTotal, error) {
	return r.categoryTotals, nil
}
func (r *fakeTransactionRepo) SumExpensesByFocus(context.Context, uuid.UUID, time.Time, time.Time) ([]adapter.FocusTotal, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

type fakeRecurringRepo struct {
	items []*entity.RecurringItem
}

func (r *fakeRecurringRepo) Create(context.Context, *entity.RecurringItem) error { return nil }
func (r *fakeRecurringRepo) FindByID(context.Context, uuid.UUID) (*entity.RecurringItem, error) {
	return nil, nil
}
func (r *fakeRecurringRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.RecurringItem, error) {
	return r.items, nil
}
func (r *fakeRecurringRepo) Update(context.Context, *entity.RecurringItem) error { return nil }
func (r *fakeRecurringRepo) Delete(context.Context, uuid.UUID) error             { return nil }
func (r *fakeRecurringRepo) Settle(context.Context, *entity.RecurringItem, *entity.Transaction, valueobject.MonthKey) error {
	return nil
}
func (r *fakeRecurringRepo) Revert(context.Context, *entity.RecurringItem) error { return nil }

type fakeHabitRepo struct {
	habits []*entity.Habit
}

func (r *fakeHabitRepo) Create(context.Context, *entity.Habit) error { return nil }
func (r *fakeHabitRepo) FindByID(context.Context, uuid.UUID) (*entity.Habit, error) {
	return nil, nil
}
func (r *fakeHabitRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Habit, error) {
	return r.habits, nil
}
func (r *fakeHabitRepo) Update(context.Context, *entity.Habit) error { return nil }
func (r *fakeHabitRepo) Delete(context.Context, uuid.UUID) error     { return nil }

func TestGetSummaryComposesMonthView(t *testing.T) {
	now := time.Now().UTC()
	month := valueobject.MonthKeyFor(now)
	settledMonth := month
	allMonths := []time.Month{
		time.January, time.February, time.March, time.April,
		time.May, time.June, time.July, time.August,
		time.September, time.October, time.November, time.December,
	}

	completedAt := now
	habits := []*entity.Habit{
		{
			ID:              uuid.New(),
			Frequency:       valueobject.FrequencyDaily,
			CurrentStreak:   3,
			LastCompletedAt: &completedAt,
		},
		{
			ID:        uuid.New(),
			Frequency: valueobject.FrequencyDaily,
		},
	}

	items := []*entity.RecurringItem{
		{
			ID:           uuid.New(),
			Name:         "Rent",
			DayOfMonth:   1,
			ActiveMonths: allMonths,
		},
		{
			ID:               uuid.New(),
			Name:             "Internet",
			DayOfMonth:       10,
			ActiveMonths:     allMonths,
			LastSettledMonth: &settledMonth,
		},
	}

	uc := NewGetSummaryUseCase(
		&fakeTransactionRepo{
			totals: &entity.TransactionTotals{
				IncomeTotal:  decimal.NewFromInt(3000),
				ExpenseTotal: decimal.NewFromInt(900),
				NetTotal:     decimal.NewFromInt(2100),
			},
			categoryTotals: []adapter.CategoryTotal{
				{CategoryName: "Housing", Total: decimal.NewFromInt(900)},
			},
		},
		&fakeRecurringRepo{items: items},
		&fakeHabitRepo{habits: habits},
	)

	out, err := uc.Execute(context.Background(), GetSummaryInput{
		UserID: uuid.New(),
		Month:  month.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.NetTotal.Equal(decimal.NewFromInt(2100)) {
		t.Errorf("net total = %s, want 2100", out.NetTotal)
	}
	if out.PendingRecurring != 1 {
		t.Errorf("pending recurring = %d, want 1", out.PendingRecurring)
	}
	if out.SettledRecurring != 1 {
		t.Errorf("settled recurring = %d, want 1", out.SettledRecurring)
	}
	if out.HabitsTotal != 2 {
		t.Errorf("habits total = %d, want 2", out.HabitsTotal)
	}
	if out.HabitsCompleted != 1 {
		t.Errorf("habits completed = %d, want 1", out.HabitsCompleted)
	}
	if len(out.SpendingByCat) != 1 || out.SpendingByCat[0].CategoryName != "Housing" {
		t.Errorf("spending by category = %+v, want one Housing slice", out.SpendingByCat)
	}
}

func TestGetSummaryRejectsMalformedMonth(t *testing.T) {
	uc := NewGetSummaryUseCase(&fakeTransactionRepo{}, &fakeRecurringRepo{}, &fakeHabitRepo{})

	if _, err := uc.Execute(context.Background(), GetSummaryInput{
		UserID: uuid.New(),
		Month:  "2026-13",
	}); err == nil {
		t.Fatal("expected error for malformed month key")
	}
}
