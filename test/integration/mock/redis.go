package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var newRedisOnce = sync.OnceValue(func() *redis.Client {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
})

// NewRedis returns a client backed by an embedded miniredis instance, shared
// across scenarios. The login rate limiter runs against it exactly as it
// would against a real Redis server.
func NewRedis() *redis.Client {
	return newRedisOnce()
}

// ClearRedis flushes all keys, resetting rate limit counters between scenarios.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
