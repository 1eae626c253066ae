package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/application/adapter"
)

// ListCategoriesInput selects whose categories to list.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput holds the user's categories ordered by name.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase lists a user's categories.
type ListCategoriesUseCase struct {
	categories adapter.CategoryRepository
}

// NewListCategoriesUseCase creates the usecase.
func NewListCategoriesUseCase(categories adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories}
}

// Execute returns every category owned by the user.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	found, err := uc.categories.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	out := &ListCategoriesOutput{Categories: make([]*CategoryOutput, 0, len(found))}
	for _, c := range found {
		out.Categories = append(out.Categories, toCategoryOutput(c))
	}
	return out, nil
}
