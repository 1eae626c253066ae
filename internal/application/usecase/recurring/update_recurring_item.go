package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// UpdateRecurringItemInput represents the input for recurring item update.
// Nil pointer fields are left unchanged.
type UpdateRecurringItemInput struct {
	UserID       uuid.UUID
	ItemID       uuid.UUID
	Name         *string
	Amount       *decimal.Decimal
	CategoryID   *uuid.UUID
	BudgetFocus  *valueobject.BudgetFocus
	DayOfMonth   *int
	ActiveMonths *[]time.Month
}

// UpdateRecurringItemOutput represents the output of recurring item update.
type UpdateRecurringItemOutput struct {
	Item *RecurringItemOutput
}

// UpdateRecurringItemUseCase handles recurring item update logic.
type UpdateRecurringItemUseCase struct {
	recurringRepo adapter.RecurringRepository
	categoryRepo  adapter.CategoryRepository
}

// NewUpdateRecurringItemUseCase creates a new UpdateRecurringItemUseCase instance.
func NewUpdateRecurringItemUseCase(
	recurringRepo adapter.RecurringRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateRecurringItemUseCase {
	return &UpdateRecurringItemUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute performs the recurring item update. Changing the amount or day does
// not touch transactions already created by past settles.
func (uc *UpdateRecurringItemUseCase) Execute(ctx context.Context, input UpdateRecurringItemInput) (*UpdateRecurringItemOutput, error) {
	item, err := uc.recurringRepo.FindByID(ctx, input.ItemID)
	if err != nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringItemNotFound,
			"recurring item not found",
			domainerror.ErrRecurringItemNotFound,
		)
	}
	if item.UserID != input.UserID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeNotAuthorizedRecurring,
			"not authorized to modify recurring item",
			domainerror.ErrNotAuthorizedToModifyRecurringItem,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecurringFields,
				"recurring item name is required",
				domainerror.ErrRecurringNameRequired,
			)
		}
		item.Name = name
	}
	if input.Amount != nil {
		item.Amount = *input.Amount
	}
	if input.DayOfMonth != nil {
		item.DayOfMonth = *input.DayOfMonth
	}
	if input.ActiveMonths != nil {
		item.ActiveMonths = *input.ActiveMonths
	}
	if input.BudgetFocus != nil {
		item.BudgetFocus = input.BudgetFocus
	}

	if err := validateRecurringFields(item.Amount, item.Type, item.DayOfMonth, item.ActiveMonths, item.BudgetFocus); err != nil {
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
		item.CategoryID = input.CategoryID
	}

	item.UpdatedAt = time.Now().UTC()
	if err := uc.recurringRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update recurring item: %w", err)
	}

	return &UpdateRecurringItemOutput{Item: toRecurringItemOutput(item)}, nil
}
