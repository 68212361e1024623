package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in redis, shared between server replicas.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects lazily to the redis server at addr.
func NewRedisCache(addr, password string, db int) *RedisCache {
	return NewRedisCacheWithOptions(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisCacheWithOptions builds a cache from full client options.
func NewRedisCacheWithOptions(opts *redis.Options) *RedisCache {
	return &RedisCache{client: redis.NewClient(opts)}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Ping checks the connection.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
