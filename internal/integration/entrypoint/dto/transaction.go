package dto

import (
	"time"

	"github.com/lifeledger/backend/internal/application/usecase/transaction"
	"github.com/lifeledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty"`
	BudgetFocus *string `json:"budget_focus,omitempty" binding:"omitempty,oneof=needs wants savings"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date             *string  `json:"date,omitempty"`
	Description      *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount           *float64 `json:"amount,omitempty"`
	CategoryID       *string  `json:"category_id,omitempty"`
	BudgetFocus      *string  `json:"budget_focus,omitempty" binding:"omitempty,oneof=needs wants savings"`
	ClearBudgetFocus bool     `json:"clear_budget_focus,omitempty"`
	Notes            *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Date        string                       `json:"date"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	BudgetFocus *string                      `json:"budget_focus,omitempty"`
	Notes       string                       `json:"notes"`
	Source      string                       `json:"source"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Notes:       txn.Notes,
		Source:      string(txn.Source),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if txn.CategoryID != nil {
		id := txn.CategoryID.String()
		response.CategoryID = &id
	}
	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
			Icon:  txn.Category.Icon,
			Type:  string(txn.Category.Type),
		}
	}
	if txn.BudgetFocus != nil {
		focus := string(*txn.BudgetFocus)
		response.BudgetFocus = &focus
	}
	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Page,
			Limit:      output.Limit,
			Total:      output.Total,
			TotalPages: output.TotalPages,
		},
		Totals: ToTransactionTotalsResponse(output.Totals),
	}
}

// ToTransactionTotalsResponse converts TransactionTotals to a TransactionTotalsResponse DTO.
func ToTransactionTotalsResponse(totals *entity.TransactionTotals) TransactionTotalsResponse {
	if totals == nil {
		return TransactionTotalsResponse{}
	}
	return TransactionTotalsResponse{
		IncomeTotal:  totals.IncomeTotal.String(),
		ExpenseTotal: totals.ExpenseTotal.String(),
		NetTotal:     totals.NetTotal.String(),
	}
}
