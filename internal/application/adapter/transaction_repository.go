package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID      uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	CategoryIDs []uuid.UUID
	Type        *entity.TransactionType
	Search      string // Case-insensitive description match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.TransactionWithCategory
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// CategoryTotal represents the expense total accumulated under one category.
type CategoryTotal struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// FocusTotal represents the expense total accumulated under one budget focus.
type FocusTotal struct {
	Focus valueobject.BudgetFocus
	Total decimal.Decimal
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// GetTotals calculates income/expense/net totals for the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*entity.TransactionTotals, error)

	// SumExpensesByCategory returns per-category expense totals in the date range.
	SumExpensesByCategory(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]CategoryTotal, error)

	// SumExpensesByFocus returns per-budget-focus expense totals in the date
	// range. Expenses without a focus tag are not included.
	SumExpensesByFocus(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]FocusTotal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction and, in the same database
	// transaction, clears any recurring-item or shopping-item reference
	// pointing at it so no dangling settled state survives.
	Delete(ctx context.Context, id uuid.UUID) error
}
