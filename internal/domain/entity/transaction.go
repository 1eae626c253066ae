package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// TransactionSource records which flow created a transaction.
type TransactionSource string

const (
	TransactionSourceManual    TransactionSource = "manual"
	TransactionSourceRecurring TransactionSource = "recurring"
	TransactionSourceShopping  TransactionSource = "shopping"
)

// Transaction is a single ledger entry.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  *uuid.UUID // nil when uncategorized
	BudgetFocus *valueobject.BudgetFocus
	Notes       string
	Source      TransactionSource
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// NewTransaction builds a ledger entry with fresh timestamps.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
	budgetFocus *valueobject.BudgetFocus,
	notes string,
	source TransactionSource,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		BudgetFocus: budgetFocus,
		Notes:       notes,
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory pairs a transaction with its category, when set.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}

// TransactionTotals aggregates income, expense and net amounts.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
