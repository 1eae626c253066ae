package dto

import (
	"github.com/lifeledger/backend/internal/application/usecase/dashboard"
)

// CategorySpendingResponse represents one slice of the per-category expense chart.
type CategorySpendingResponse struct {
	CategoryID   *string `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name"`
	Total        string  `json:"total"`
}

// DashboardSummaryResponse represents the dashboard summary for one month.
type DashboardSummaryResponse struct {
	Month            string                     `json:"month"`
	IncomeTotal      string                     `json:"income_total"`
	ExpenseTotal     string                     `json:"expense_total"`
	NetTotal         string                     `json:"net_total"`
	SpendingByCat    []CategorySpendingResponse `json:"spending_by_category"`
	PendingRecurring int                        `json:"pending_recurring"`
	SettledRecurring int                        `json:"settled_recurring"`
	HabitsTotal      int                        `json:"habits_total"`
	HabitsCompleted  int                        `json:"habits_completed"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to a DashboardSummaryResponse DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	spending := make([]CategorySpendingResponse, len(output.SpendingByCat))
	for i, s := range output.SpendingByCat {
		entry := CategorySpendingResponse{
			CategoryName: s.CategoryName,
			Total:        s.Total.String(),
		}
		if s.CategoryID != nil {
			id := s.CategoryID.String()
			entry.CategoryID = &id
		}
		spending[i] = entry
	}

	return DashboardSummaryResponse{
		Month:            output.Month.String(),
		IncomeTotal:      output.IncomeTotal.String(),
		ExpenseTotal:     output.ExpenseTotal.String(),
		NetTotal:         output.NetTotal.String(),
		SpendingByCat:    spending,
		PendingRecurring: output.PendingRecurring,
		SettledRecurring: output.SettledRecurring,
		HabitsTotal:      output.HabitsTotal,
		HabitsCompleted:  output.HabitsCompleted,
	}
}
