// Package redisstate implements the cache-backed repositories on Redis.
package redisstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MuhammadAdil12/module-4-project-backend-adil/internal/repository"
)

// RedisNameCache is the Redis implementation of repository.NameCache.
// Display names change only at registration, so a generous TTL is safe.
type RedisNameCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisNameCache creates a RedisNameCache.
func NewRedisNameCache(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisNameCache {
	if client == nil {
		panic("redis client cannot be nil for RedisNameCache")
	}
	if keyPrefix == "" {
		keyPrefix = "ht:"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisNameCache{client: client, keyPrefix: keyPrefix, ttl: ttl}
}

func (c *RedisNameCache) usernameKey(userID uint) string {
	return fmt.Sprintf("%suser:%d:name", c.keyPrefix, userID)
}

func (c *RedisNameCache) GetUsername(ctx context.Context, userID uint) (string, error) {
	name, err := c.client.Get(ctx, c.usernameKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("redis: get username for user %d: %w", userID, err)
	}
	return name, nil
}

func (c *RedisNameCache) SetUsername(ctx context.Context, userID uint, username string) error {
	if err := c.client.Set(ctx, c.usernameKey(userID), username, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set username for user %d: %w", userID, err)
	}
	return nil
}
