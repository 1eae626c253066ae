package shopping

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
)

// ListListsInput represents the input for listing shopping lists.
type ListListsInput struct {
	UserID uuid.UUID
}

// ListListsOutput represents the output of listing shopping lists.
type ListListsOutput struct {
	Lists []*ShoppingListOutput
}

// ListListsUseCase handles shopping list listing logic.
type ListListsUseCase struct {
	shoppingRepo adapter.ShoppingRepository
}

// NewListListsUseCase creates a new ListListsUseCase instance.
func NewListListsUseCase(shoppingRepo adapter.ShoppingRepository) *ListListsUseCase {
	return &ListListsUseCase{shoppingRepo: shoppingRepo}
}

// Execute lists the user's shopping lists with their items and totals.
func (uc *ListListsUseCase) Execute(ctx context.Context, input ListListsInput) (*ListListsOutput, error) {
	lists, err := uc.shoppingRepo.FindListsByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}

	output := &ListListsOutput{Lists: make([]*ShoppingListOutput, 0, len(lists))}
	for _, lwi := range lists {
		output.Lists = append(output.Lists, toShoppingListOutput(lwi.List, lwi.Items))
	}
	return output, nil
}
