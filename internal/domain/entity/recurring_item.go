package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// RecurringStatus is the state of a recurring item relative to a viewing month.
type RecurringStatus string

const (
	RecurringStatusPending  RecurringStatus = "pending"
	RecurringStatusSettled  RecurringStatus = "settled"
	RecurringStatusOmitted  RecurringStatus = "omitted"
	RecurringStatusInactive RecurringStatus = "inactive"
)

// RecurringItem represents a recurring expense or income definition.
//
// LastSettledMonth and LastTransactionID are set together when the item is
// settled for a month and cleared together on revert. LastSettledMonth is set
// if and only if the referenced transaction exists.
type RecurringItem struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Amount            decimal.Decimal
	Type              TransactionType
	CategoryID        *uuid.UUID
	BudgetFocus       *valueobject.BudgetFocus // Expenses only
	DayOfMonth        int                      // 1-31, clamped to month length when materialized
	ActiveMonths      []time.Month             // Empty means every month
	LastSettledMonth  *valueobject.MonthKey
	LastTransactionID *uuid.UUID
	OmittedMonths     []valueobject.MonthKey
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time // Soft-delete support
}

// NewRecurringItem creates a new RecurringItem entity.
func NewRecurringItem(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	itemType TransactionType,
	categoryID *uuid.UUID,
	budgetFocus *valueobject.BudgetFocus,
	dayOfMonth int,
	activeMonths []time.Month,
) *RecurringItem {
	now := time.Now().UTC()
	return &RecurringItem{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Amount:       amount,
		Type:         itemType,
		CategoryID:   categoryID,
		BudgetFocus:  budgetFocus,
		DayOfMonth:   dayOfMonth,
		ActiveMonths: activeMonths,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsActiveIn reports whether the item applies to the given month at all.
// An empty ActiveMonths list means the item applies to every month.
func (r *RecurringItem) IsActiveIn(month valueobject.MonthKey) bool {
	if len(r.ActiveMonths) == 0 {
		return true
	}
	for _, m := range r.ActiveMonths {
		if m == month.Month() {
			return true
		}
	}
	return false
}

// IsSettledIn reports whether the item has been settled for the given month.
func (r *RecurringItem) IsSettledIn(month valueobject.MonthKey) bool {
	return r.LastSettledMonth != nil && *r.LastSettledMonth == month
}

// IsOmittedIn reports whether the user explicitly skipped the given month.
func (r *RecurringItem) IsOmittedIn(month valueobject.MonthKey) bool {
	for _, m := range r.OmittedMonths {
		if m == month {
			return true
		}
	}
	return false
}

// StatusIn classifies the item for the given viewing month. Settled takes
// precedence over omitted; an inactive month excludes the item entirely.
func (r *RecurringItem) StatusIn(month valueobject.MonthKey) RecurringStatus {
	if !r.IsActiveIn(month) {
		return RecurringStatusInactive
	}
	if r.IsSettledIn(month) {
		return RecurringStatusSettled
	}
	if r.IsOmittedIn(month) {
		return RecurringStatusOmitted
	}
	return RecurringStatusPending
}
