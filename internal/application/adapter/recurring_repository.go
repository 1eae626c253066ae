package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifeledger/backend/internal/domain/entity"
	"github.com/lifeledger/backend/internal/domain/valueobject"
)

// RecurringRepository defines the interface for recurring item persistence operations.
type RecurringRepository interface {
	// Create creates a new recurring item in the database.
	Create(ctx context.Context, item *entity.RecurringItem) error

	// FindByID retrieves a recurring item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringItem, error)

	// FindByUser retrieves all recurring items for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringItem, error)

	// Update updates an existing recurring item in the database.
	Update(ctx context.Context, item *entity.RecurringItem) error

	// Delete soft-deletes a recurring item. Historical transactions created
	// by past settles are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	// Settle atomically creates the transaction and stamps the item's
	// LastSettledMonth/LastTransactionID. The item update is conditional on
	// the month not being settled yet; a lost race returns
	// domainerror.ErrAlreadySettled and leaves no transaction behind.
	Settle(ctx context.Context, item *entity.RecurringItem, txn *entity.Transaction, month valueobject.MonthKey) error

	// Revert atomically deletes the settled transaction and clears the
	// item's LastSettledMonth/LastTransactionID. A transaction that is
	// already gone is tolerated; the dangling pointers are still cleared.
	Revert(ctx context.Context, item *entity.RecurringItem) error
}
