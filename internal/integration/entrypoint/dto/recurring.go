package dto

import (
	"time"

	"github.com/lifeledger/backend/internal/application/usecase/recurring"
)

// CreateRecurringItemRequest represents the request body for recurring item creation.
type CreateRecurringItemRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Amount       float64 `json:"amount" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID   *string `json:"category_id,omitempty"`
	BudgetFocus  *string `json:"budget_focus,omitempty" binding:"omitempty,oneof=needs wants savings"`
	DayOfMonth   int     `json:"day_of_month" binding:"required,min=1,max=31"`
	ActiveMonths []int   `json:"active_months,omitempty" binding:"omitempty,dive,min=1,max=12"`
}

// UpdateRecurringItemRequest represents the request body for recurring item update.
type UpdateRecurringItemRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Amount       *float64 `json:"amount,omitempty"`
	CategoryID   *string  `json:"category_id,omitempty"`
	BudgetFocus  *string  `json:"budget_focus,omitempty" binding:"omitempty,oneof=needs wants savings"`
	DayOfMonth   *int     `json:"day_of_month,omitempty" binding:"omitempty,min=1,max=31"`
	ActiveMonths *[]int   `json:"active_months,omitempty" binding:"omitempty,dive,min=1,max=12"`
}

// SettleItemRequest represents the request body for settling a recurring item.
type SettleItemRequest struct {
	Month string `json:"month" binding:"required"`
}

// OmitMonthRequest represents the request body for skipping a month.
type OmitMonthRequest struct {
	Month string `json:"month" binding:"required"`
}

// RecurringItemResponse represents a recurring item in API responses.
type RecurringItemResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Amount            string    `json:"amount"`
	Type              string    `json:"type"`
	CategoryID        *string   `json:"category_id,omitempty"`
	BudgetFocus       *string   `json:"budget_focus,omitempty"`
	DayOfMonth        int       `json:"day_of_month"`
	ActiveMonths      []int     `json:"active_months"`
	LastSettledMonth  *string   `json:"last_settled_month,omitempty"`
	LastTransactionID *string   `json:"last_transaction_id,omitempty"`
	OmittedMonths     []string  `json:"omitted_months"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MonthItemResponse represents an item with its status for a viewing month.
type MonthItemResponse struct {
	Item    RecurringItemResponse `json:"item"`
	Status  string                `json:"status"`
	DueDate string                `json:"due_date"`
}

// MonthViewResponse represents the reconciled month view.
type MonthViewResponse struct {
	Month          string              `json:"month"`
	Pending        []MonthItemResponse `json:"pending"`
	Settled        []MonthItemResponse `json:"settled"`
	Omitted        []MonthItemResponse `json:"omitted"`
	PendingExpense string              `json:"pending_expense"`
	PendingIncome  string              `json:"pending_income"`
	SettledExpense string              `json:"settled_expense"`
	SettledIncome  string              `json:"settled_income"`
}

// SettleItemResponse represents the response for settling a recurring item.
type SettleItemResponse struct {
	Item          RecurringItemResponse `json:"item"`
	TransactionID string                `json:"transaction_id"`
}

// ToRecurringItemResponse converts a RecurringItemOutput to a RecurringItemResponse DTO.
func ToRecurringItemResponse(item *recurring.RecurringItemOutput) RecurringItemResponse {
	activeMonths := make([]int, len(item.ActiveMonths))
	for i, m := range item.ActiveMonths {
		activeMonths[i] = int(m)
	}

	omittedMonths := make([]string, len(item.OmittedMonths))
	for i, m := range item.OmittedMonths {
		omittedMonths[i] = m.String()
	}

	response := RecurringItemResponse{
		ID:            item.ID.String(),
		UserID:        item.UserID.String(),
		Name:          item.Name,
		Amount:        item.Amount.String(),
		Type:          string(item.Type),
		DayOfMonth:    item.DayOfMonth,
		ActiveMonths:  activeMonths,
		OmittedMonths: omittedMonths,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
	if item.CategoryID != nil {
		id := item.CategoryID.String()
		response.CategoryID = &id
	}
	if item.BudgetFocus != nil {
		focus := string(*item.BudgetFocus)
		response.BudgetFocus = &focus
	}
	if item.LastSettledMonth != nil {
		month := item.LastSettledMonth.String()
		response.LastSettledMonth = &month
	}
	if item.LastTransactionID != nil {
		id := item.LastTransactionID.String()
		response.LastTransactionID = &id
	}
	return response
}

// ToMonthItemResponses converts MonthItemOutputs to MonthItemResponse DTOs.
func ToMonthItemResponses(items []*recurring.MonthItemOutput) []MonthItemResponse {
	responses := make([]MonthItemResponse, len(items))
	for i, item := range items {
		responses[i] = MonthItemResponse{
			Item:    ToRecurringItemResponse(item.Item),
			Status:  string(item.Status),
			DueDate: item.DueDate.Format("2006-01-02"),
		}
	}
	return responses
}

// ToMonthViewResponse converts a ListMonthOutput to a MonthViewResponse DTO.
func ToMonthViewResponse(output *recurring.ListMonthOutput) MonthViewResponse {
	return MonthViewResponse{
		Month:          output.Month.String(),
		Pending:        ToMonthItemResponses(output.Pending),
		Settled:        ToMonthItemResponses(output.Settled),
		Omitted:        ToMonthItemResponses(output.Omitted),
		PendingExpense: output.PendingExpense.String(),
		PendingIncome:  output.PendingIncome.String(),
		SettledExpense: output.SettledExpense.String(),
		SettledIncome:  output.SettledIncome.String(),
	}
}
