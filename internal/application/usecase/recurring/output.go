package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// RecurringItemOutput represents a recurring item in use case outputs.
type RecurringItemOutput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Amount            decimal.Decimal
	Type              entity.TransactionType
	CategoryID        *uuid.UUID
	BudgetFocus       *valueobject.BudgetFocus
	DayOfMonth        int
	ActiveMonths      []time.Month
	LastSettledMonth  *valueobject.MonthKey
	LastTransactionID *uuid.UUID
	OmittedMonths     []valueobject.MonthKey
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MonthItemOutput pairs an item with its status and due date for a viewing month.
type MonthItemOutput struct {
	Item    *RecurringItemOutput
	Status  entity.RecurringStatus
	DueDate time.Time
}

func toRecurringItemOutput(item *entity.RecurringItem) *RecurringItemOutput {
	return &RecurringItemOutput{
		ID:                item.ID,
		UserID:            item.UserID,
		Name:              item.Name,
		Amount:            item.Amount,
		Type:              item.Type,
		CategoryID:        item.CategoryID,
		BudgetFocus:       item.BudgetFocus,
		DayOfMonth:        item.DayOfMonth,
		ActiveMonths:      item.ActiveMonths,
		LastSettledMonth:  item.LastSettledMonth,
		LastTransactionID: item.LastTransactionID,
		OmittedMonths:     item.OmittedMonths,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toMonthItemOutput(item *entity.RecurringItem, month valueobject.MonthKey) *MonthItemOutput {
	return &MonthItemOutput{
		Item:    toRecurringItemOutput(item),
		Status:  item.StatusIn(month),
		DueDate: month.DateOnDay(item.DayOfMonth),
	}
}
