package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client backed by an embedded miniredis instance. The
// settle and purchase flows take their distributed locks against it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		mini, err := miniredis.Run()
		if err != nil {
			panic(err)
		}

		redisConn = redis.NewClient(&redis.Options{
			Addr: mini.Addr(),
		})
	})

	return redisConn
}

// ClearRedis flushes all keys, releasing any locks left by a scenario.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
