package shopping

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
	"github.com/lifeledger/backend/internal/domain/entity"
	domainerror "github.com/lifeledger/backend/internal/domain/error"
)

// CreateListInput represents the input for shopping list creation.
type CreateListInput struct {
	UserID uuid.UUID
	Name   string
}

// CreateListOutput represents the output of shopping list creation.
type CreateListOutput struct {
	List *ShoppingListOutput
}

// CreateListUseCase handles shopping list creation logic.
type CreateListUseCase struct {
	shoppingRepo adapter.ShoppingRepository
}

// NewCreateListUseCase creates a new CreateListUseCase instance.
func NewCreateListUseCase(shoppingRepo adapter.ShoppingRepository) *CreateListUseCase {
	return &CreateListUseCase{shoppingRepo: shoppingRepo}
}

// Execute performs the shopping list creation.
func (uc *CreateListUseCase) Execute(ctx context.Context, input CreateListInput) (*CreateListOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewShoppingError(
			domainerror.ErrCodeMissingShoppingFields,
			"shopping list name is required",
			domainerror.ErrShoppingNameRequired,
		)
	}

	list := entity.NewShoppingList(input.UserID, name)
	if err := uc.shoppingRepo.CreateList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create shopping list: %w", err)
	}

	return &CreateListOutput{List: toShoppingListOutput(list, nil)}, nil
}
