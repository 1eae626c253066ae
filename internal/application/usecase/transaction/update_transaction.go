package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil pointer fields are left unchanged. ClearBudgetFocus removes the focus
// tag; it wins over BudgetFocus when both are set.
type UpdateTransactionInput struct {
	UserID           uuid.UUID
	TransactionID    uuid.UUID
	Date             *time.Time
	Description      *string
	Amount           *decimal.Decimal
	CategoryID       *uuid.UUID
	BudgetFocus      *valueobject.BudgetFocus
	ClearBudgetFocus bool
	Notes            *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update. The transaction type and source
// are immutable after creation.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if txn.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Notes != nil {
		txn.Notes = *input.Notes
	}
	if input.ClearBudgetFocus {
		txn.BudgetFocus = nil
	} else if input.BudgetFocus != nil {
		txn.BudgetFocus = input.BudgetFocus
	}

	if err := validateTransactionFields(txn.Description, txn.Notes, txn.Amount, txn.Type, txn.BudgetFocus); err != nil {
		return nil, err
	}

	var category *entity.Category
	if input.CategoryID != nil {
		cat, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		if cat.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotOwned,
				"category does not belong to user",
				domainerror.ErrCategoryNotOwnedByUser,
			)
		}
		txn.CategoryID = input.CategoryID
		category = cat
	} else if txn.CategoryID != nil {
		if cat, err := uc.categoryRepo.FindByID(ctx, *txn.CategoryID); err == nil {
			category = cat
		}
	}

	txn.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(txn, category)}, nil
}
