package budget

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

// fakeTransactionRepo serves canned totals for the breakdown.
type fakeTransactionRepo struct {
	totals      *entity.TransactionTotals
	focusTotals []adapter.FocusTotal
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
	return nil, nil
}
func (r *fakeTransactionRepo) SumExpensesByFocus(context.Context, uuid.UUID, time.Time, time.Time) ([]adapter.FocusTotal, error) {
	return r.focusTotals, nil
}
func (r *fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

func TestGetBreakdownDerivesTargetsAndShares(t *testing.T) {
	repo := &fakeTransactionRepo{
		totals: &entity.TransactionTotals{
			IncomeTotal:  decimal.NewFromInt(1000),
			ExpenseTotal: decimal.NewFromInt(700),
			NetTotal:     decimal.NewFromInt(300),
		},
		focusTotals: []adapter.FocusTotal{
			{Focus: valueobject.BudgetFocusNeeds, Total: decimal.NewFromInt(450)},
			{Focus: valueobject.BudgetFocusWants, Total: decimal.NewFromInt(150)},
		},
	}

	uc := NewGetBreakdownUseCase(repo)
	out, err := uc.Execute(context.Background(), GetBreakdownInput{
		UserID: uuid.New(),
		Month:  "2024-06",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Focuses) != 3 {
		t.Fatalf("%d focus buckets, want 3", len(out.Focuses))
	}

	needs := out.Focuses[0]
	if needs.Focus != valueobject.BudgetFocusNeeds {
		t.Fatalf("first bucket = %s, want needs", needs.Focus)
	}
	if !needs.Spent.Equal(decimal.NewFromInt(450)) {
		t.Errorf("needs spent = %s, want 450", needs.Spent)
	}
	if !needs.Target.Equal(decimal.NewFromInt(500)) {
		t.Errorf("needs target = %s, want 500 (50%% of income)", needs.Target)
	}
	if !needs.ShareOfIncome.Equal(decimal.NewFromInt(45)) {
		t.Errorf("needs share = %s, want 45", needs.ShareOfIncome)
	}

	savings := out.Focuses[2]
	if !savings.Spent.IsZero() {
		t.Errorf("savings spent = %s, want 0", savings.Spent)
	}
	if !savings.Target.Equal(decimal.NewFromInt(200)) {
		t.Errorf("savings target = %s, want 200 (20%% of income)", savings.Target)
	}

	// 700 expense total minus 600 tagged leaves 100 untagged.
	if !out.Untagged.Equal(decimal.NewFromInt(100)) {
		t.Errorf("untagged = %s, want 100", out.Untagged)
	}
}

func TestGetBreakdownZeroIncome(t *testing.T) {
	repo := &fakeTransactionRepo{
		totals: &entity.TransactionTotals{
			IncomeTotal:  decimal.Zero,
			ExpenseTotal: decimal.NewFromInt(100),
			NetTotal:     decimal.NewFromInt(-100),
		},
		focusTotals: []adapter.FocusTotal{
			{Focus: valueobject.BudgetFocusNeeds, Total: decimal.NewFromInt(100)},
		},
	}

	uc := NewGetBreakdownUseCase(repo)
	out, err := uc.Execute(context.Background(), GetBreakdownInput{
		UserID: uuid.New(),
		Month:  "2024-06",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fb := range out.Focuses {
		if !fb.ShareOfIncome.IsZero() {
			t.Errorf("%s share = %s, want 0 with no income", fb.Focus, fb.ShareOfIncome)
		}
		if !fb.Target.IsZero() {
			t.Errorf("%s target = %s, want 0 with no income", fb.Focus, fb.Target)
		}
	}
}

func TestGetBreakdownRejectsInvalidMonth(t *testing.T) {
	uc := NewGetBreakdownUseCase(&fakeTransactionRepo{})
	if _, err := uc.Execute(context.Background(), GetBreakdownInput{
		UserID: uuid.New(),
		Month:  "2024-6",
	}); err == nil {
		t.Error("legacy month format accepted, want error")
	}
}
