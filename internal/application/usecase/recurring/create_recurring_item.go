package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// CreateRecurringItemInput represents the input for recurring item creation.
type CreateRecurringItemInput struct {
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	Type         entity.TransactionType
	CategoryID   *uuid.UUID
	BudgetFocus  *valueobject.BudgetFocus
	DayOfMonth   int
	ActiveMonths []time.Month
}

// CreateRecurringItemOutput represents the output of recurring item creation.
type CreateRecurringItemOutput struct {
	Item *RecurringItemOutput
}

// CreateRecurringItemUseCase handles recurring item creation logic.
type CreateRecurringItemUseCase struct {
	recurringRepo adapter.RecurringRepository
	categoryRepo  adapter.CategoryRepository
}

// NewCreateRecurringItemUseCase creates a new CreateRecurringItemUseCase instance.
func NewCreateRecurringItemUseCase(
	recurringRepo adapter.RecurringRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateRecurringItemUseCase {
	return &CreateRecurringItemUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute performs the recurring item creation.
func (uc *CreateRecurringItemUseCase) Execute(ctx context.Context, input CreateRecurringItemInput) (*CreateRecurringItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"recurring item name is required",
			domainerror.ErrRecurringNameRequired,
		)
	}

	if err := validateRecurringFields(input.Amount, input.Type, input.DayOfMonth, input.ActiveMonths, input.BudgetFocus); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeNotAuthorizedCategory,
				"category does not belong to user",
				domainerror.ErrNotAuthorizedToModifyCategory,
			)
		}
	}

	item := entity.NewRecurringItem(
		input.UserID,
		name,
		input.Amount,
		input.Type,
		input.CategoryID,
		input.BudgetFocus,
		input.DayOfMonth,
		input.ActiveMonths,
	)

	if err := uc.recurringRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create recurring item: %w", err)
	}

	return &CreateRecurringItemOutput{Item: toRecurringItemOutput(item)}, nil
}

// validateRecurringFields checks the shared field constraints for create and update.
func validateRecurringFields(
	amount decimal.Decimal,
	itemType entity.TransactionType,
	dayOfMonth int,
	activeMonths []time.Month,
	budgetFocus *valueobject.BudgetFocus,
) error {
	if !amount.IsPositive() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"recurring amount must be positive",
			domainerror.ErrInvalidRecurringAmount,
		)
	}
	if itemType != entity.TransactionTypeExpense && itemType != entity.TransactionTypeIncome {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringFields,
			"recurring item type must be 'expense' or 'income'",
			domainerror.ErrInvalidRecurringType,
		)
	}
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"day of month must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	for _, m := range activeMonths {
		if m < time.January || m > time.December {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeInvalidActiveMonth,
				"active months must be between 1 and 12",
				domainerror.ErrInvalidActiveMonth,
			)
		}
	}
	if budgetFocus != nil {
		if !budgetFocus.Valid() {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidBudgetFocus,
				"budget focus must be 'needs', 'wants' or 'savings'",
				domainerror.ErrInvalidBudgetFocus,
			)
		}
		if itemType != entity.TransactionTypeExpense {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidBudgetFocus,
				"budget focus applies to expenses only",
				domainerror.ErrInvalidBudgetFocus,
			)
		}
	}
	return nil
}
