package adapter

import (
	"context"
	"time"
)

// LockService provides short-lived mutual exclusion around multi-step
// transitions (recurring settle/revert, shopping purchase/revert) so that two
// concurrent clients cannot both enter the same transition. The conditional
// database update remains the source of truth; the lock only narrows the race
// window and keeps duplicate work off the database.
type LockService interface {
	// AcquireLock attempts to take the named lock for at most ttl.
	// It returns false when another holder has the lock.
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// ReleaseLock releases the named lock. Releasing an expired or unheld
	// lock is a no-op.
	ReleaseLock(ctx context.Context, key string) error
}
