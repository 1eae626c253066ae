package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
	"github.com/lifeledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// applyFilter narrows a transactions query to the filter criteria.
func applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return query
}

// FindByFilter retrieves transactions based on filter criteria with pagination.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}

	totalPages := int(total) / pagination.Limit
	if int(total)%pagination.Limit > 0 {
		totalPages++
	}

	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

// GetTotals calculates income/expense/net totals for the filter.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*entity.TransactionTotals, error) {
	var row struct {
		IncomeTotal  decimal.Decimal
		ExpenseTotal decimal.Decimal
	}

	query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)
	result := query.
		Select(`COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS income_total,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS expense_total`).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.TransactionTotals{
		IncomeTotal:  row.IncomeTotal,
		ExpenseTotal: row.ExpenseTotal,
		NetTotal:     row.IncomeTotal.Sub(row.ExpenseTotal),
	}, nil
}

// SumExpensesByCategory returns per-category expense totals in the date range.
// Transactions without a category are grouped under a nil category ID.
func (r *transactionRepository) SumExpensesByCategory(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]adapter.CategoryTotal, error) {
	var rows []struct {
		CategoryID   *uuid.UUID
		CategoryName *string
		Total        decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("transactions.category_id AS category_id, categories.name AS category_name, COALESCE(SUM(transactions.amount), 0) AS total").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ? AND transactions.date >= ? AND transactions.date <= ? AND transactions.deleted_at IS NULL",
			userID, string(entity.TransactionTypeExpense), startDate, endDate).
		Group("transactions.category_id, categories.name").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]adapter.CategoryTotal, len(rows))
	for i, row := range rows {
		name := ""
		if row.CategoryName != nil {
			name = *row.CategoryName
		}
		totals[i] = adapter.CategoryTotal{
			CategoryID:   row.CategoryID,
			CategoryName: name,
			Total:        row.Total,
		}
	}
	return totals, nil
}

// SumExpensesByFocus returns per-budget-focus expense totals in the date
// range. Untagged expenses are excluded; callers derive the untagged rest
// from the overall expense total.
func (r *transactionRepository) SumExpensesByFocus(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]adapter.FocusTotal, error) {
	var rows []struct {
		BudgetFocus string
		Total       decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("budget_focus, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND budget_focus IS NOT NULL AND date >= ? AND date <= ?",
			userID, string(entity.TransactionTypeExpense), startDate, endDate).
		Group("budget_focus").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]adapter.FocusTotal, len(rows))
	for i, row := range rows {
		totals[i] = adapter.FocusTotal{
			Focus: valueobject.BudgetFocus(row.BudgetFocus),
			Total: row.Total,
		}
	}
	return totals, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transactionModel.ID).
		Select("date", "description", "amount", "category_id", "budget_focus",
			"notes", "updated_at").
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete soft-deletes a transaction and clears any recurring-item or
// shopping-item reference pointing at it in the same database transaction,
// so no dangling settled or purchased state survives.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TransactionModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}

		now := time.Now().UTC()

		if err := tx.Model(&model.RecurringItemModel{}).
			Where("last_transaction_id = ?", id).
			Updates(map[string]interface{}{
				"last_settled_month":  nil,
				"last_transaction_id": nil,
				"updated_at":          now,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.ShoppingItemModel{}).
			Where("transaction_id = ?", id).
			Updates(map[string]interface{}{
				"purchased":      false,
				"purchased_at":   nil,
				"final_amount":   nil,
				"transaction_id": nil,
				"updated_at":     now,
			}).Error; err != nil {
			return err
		}

		return nil
	})
}
