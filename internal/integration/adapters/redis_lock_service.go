package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lifeledger/backend/internal/application/adapter"
)

// redisLockService implements the adapter.LockService interface on Redis.
// SET NX with a TTL gives a lock that cannot outlive a crashed holder.
type redisLockService struct {
	client *redis.Client
}

// NewRedisLockService creates a new Redis-backed lock service instance.
func NewRedisLockService(client *redis.Client) adapter.LockService {
	return &redisLockService{
		client: client,
	}
}

// AcquireLock attempts to take the named lock for at most ttl. It returns
// false when another holder has the lock.
func (s *redisLockService) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := s.client.SetNX(ctx, lockKey(key), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %q: %w", key, err)
	}
	return acquired, nil
}

// ReleaseLock releases the named lock. Releasing an expired or unheld lock
// is a no-op.
func (s *redisLockService) ReleaseLock(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, lockKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to release lock %q: %w", key, err)
	}
	return nil
}

func lockKey(key string) string {
	return "lock:" + key
}
