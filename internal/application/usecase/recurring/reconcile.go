// Package recurring contains recurring item use cases and the month reconciler.
package recurring

import (
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// MonthView is the reconciled view of a user's recurring items for one
// viewing month. Every item active in the month lands in exactly one of the
// three buckets; items whose ActiveMonths exclude the month appear in none.
type MonthView struct {
	Month   valueobject.MonthKey
	Pending []*entity.RecurringItem
	Settled []*entity.RecurringItem
	Omitted []*entity.RecurringItem
}

// PartitionByMonth classifies items for the viewing month. Settled takes
// precedence over omitted, so an item settled and later omitted for the same
// month still shows as settled until reverted.
func PartitionByMonth(items []*entity.RecurringItem, month valueobject.MonthKey) *MonthView {
	view := &MonthView{Month: month}
	for _, item := range items {
		switch item.StatusIn(month) {
		case entity.RecurringStatusSettled:
			view.Settled = append(view.Settled, item)
		case entity.RecurringStatusOmitted:
			view.Omitted = append(view.Omitted, item)
		case entity.RecurringStatusPending:
			view.Pending = append(view.Pending, item)
		case entity.RecurringStatusInactive:
			// Not part of the month at all.
		}
	}
	return view
}

// PendingTotals sums the pending bucket by transaction type.
func (v *MonthView) PendingTotals() (expense, income decimal.Decimal) {
	for _, item := range v.Pending {
		if item.Type == entity.TransactionTypeIncome {
			income = income.Add(item.Amount)
		} else {
			expense = expense.Add(item.Amount)
		}
	}
	return expense, income
}

// SettledTotals sums the settled bucket by transaction type.
func (v *MonthView) SettledTotals() (expense, income decimal.Decimal) {
	for _, item := range v.Settled {
		if item.Type == entity.TransactionTypeIncome {
			income = income.Add(item.Amount)
		} else {
			expense = expense.Add(item.Amount)
		}
	}
	return expense, income
}
