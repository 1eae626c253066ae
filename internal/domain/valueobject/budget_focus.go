package valueobject

// BudgetFocus classifies an expense under the 50/30/20 budgeting split.
type BudgetFocus string

const (
	BudgetFocusNeeds   BudgetFocus = "needs"
	BudgetFocusWants   BudgetFocus = "wants"
	BudgetFocusSavings BudgetFocus = "savings"
)

// Valid reports whether the focus is one of the known values.
func (f BudgetFocus) Valid() bool {
	return f == BudgetFocusNeeds || f == BudgetFocusWants || f == BudgetFocusSavings
}

// BudgetFocuses lists all budget focuses in presentation order.
func BudgetFocuses() []BudgetFocus {
	return []BudgetFocus{BudgetFocusNeeds, BudgetFocusWants, BudgetFocusSavings}
}
