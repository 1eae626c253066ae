// Package adapter defines the interfaces the usecases depend on; the
// integration layer provides the implementations.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entity.User) error
}
