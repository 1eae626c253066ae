package dto

import (
	"github.com/lifeledger/backend/internal/application/usecase/budget"
)

// FocusBreakdownResponse represents one focus bucket in the budget breakdown.
type FocusBreakdownResponse struct {
	Focus         string `json:"focus"`
	Spent         string `json:"spent"`
	Target        string `json:"target"`
	ShareOfIncome string `json:"share_of_income"`
}

// BudgetBreakdownResponse represents the monthly budget breakdown.
type BudgetBreakdownResponse struct {
	Month    string                   `json:"month"`
	Income   string                   `json:"income"`
	Focuses  []FocusBreakdownResponse `json:"focuses"`
	Untagged string                   `json:"untagged"`
}

// ToBudgetBreakdownResponse converts a GetBreakdownOutput to a BudgetBreakdownResponse DTO.
func ToBudgetBreakdownResponse(output *budget.GetBreakdownOutput) BudgetBreakdownResponse {
	focuses := make([]FocusBreakdownResponse, len(output.Focuses))
	for i, f := range output.Focuses {
		focuses[i] = FocusBreakdownResponse{
			Focus:         string(f.Focus),
			Spent:         f.Spent.String(),
			Target:        f.Target.String(),
			ShareOfIncome: f.ShareOfIncome.String(),
		}
	}

	return BudgetBreakdownResponse{
		Month:    output.Month.String(),
		Income:   output.Income.String(),
		Focuses:  focuses,
		Untagged: output.Untagged.String(),
	}
}
