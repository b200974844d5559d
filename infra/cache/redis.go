package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// RedisSetCache implements interfaces.SetCache on Redis sets. Every set
// name is prefixed so several services can share one instance.
type RedisSetCache struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func NewRedisSetCache(client *redis.Client, prefix string) *RedisSetCache {
	return &RedisSetCache{client: client, prefix: prefix}
}

func (c *RedisSetCache) key(set string) string { return c.prefix + set }

func (c *RedisSetCache) SIsMember(ctx context.Context, set, member string) (bool, error) {
	ok, err := c.client.SIsMember(ctx, c.key(set), member).Result()
	if err != nil {
		return false, fmt.Errorf("redis sismember %s: %w", set, err)
	}
	return ok, nil
}

func (c *RedisSetCache) SAdd(ctx context.Context, set, member string) error {
	if err := c.client.SAdd(ctx, c.key(set), member).Err(); err != nil {
		return fmt.Errorf("redis sadd %s: %w", set, err)
	}
	return nil
}

func (c *RedisSetCache) SRem(ctx context.Context, set, member string) error {
	if err := c.client.SRem(ctx, c.key(set), member).Err(); err != nil {
		return fmt.Errorf("redis srem %s: %w", set, err)
	}
	return nil
}

func (c *RedisSetCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
