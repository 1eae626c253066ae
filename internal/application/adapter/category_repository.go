package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// CategoryRepository persists user-scoped categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// FindByUser returns the user's categories ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// Delete soft-deletes; transactions keep their category reference.
	Delete(ctx context.Context, id uuid.UUID) error
}
