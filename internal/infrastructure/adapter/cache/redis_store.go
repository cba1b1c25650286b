package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/rsvtravel/booking-engine/internal/domain/error"
	cacheport "github.com/rsvtravel/booking-engine/internal/domain/port/cache"
	"github.com/rsvtravel/booking-engine/internal/domain/port/core"
	"github.com/rsvtravel/booking-engine/internal/infrastructure/config"
)

// RedisStore implements the KeyValueStore interface over a Redis client.
// Every connectivity failure is wrapped in ErrCacheUnavailable so the
// availability cache can fall through to the database and the period lock
// can grant degraded access.
type RedisStore struct {
	client *redis.Client
	logger core.Logger
}

// NewRedisStore connects to Redis using the given configuration and verifies
// connectivity with a ping before returning the store.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig, logger core.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCacheUnavailable, err)
	}

	logger.Info("Connected to Redis", map[string]any{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	return &RedisStore{client: client, logger: logger}, nil
}

// NewRedisStoreWithClient wraps an existing client, used by tests running
// against a local Redis instance.
func NewRedisStoreWithClient(client *redis.Client, logger core.Logger) *RedisStore {
	return &RedisStore{client: client, logger: logger}
}

// Get retrieves the value for a key
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, s.wrapError("get", key, err)
	}
	return value, true, nil
}

// SetWithTTL stores a value that expires after ttl
func (s *RedisStore) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return s.wrapError("set", key, err)
	}
	return nil
}

// SetIfAbsentWithTTL stores the value only when the key does not already exist
func (s *RedisStore) SetIfAbsentWithTTL(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	acquired, err := s.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, s.wrapError("setnx", key, err)
	}
	return acquired, nil
}

// Delete removes keys; missing keys are ignored
func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return s.wrapError("del", keys[0], err)
	}
	return nil
}

// DeletePattern removes every key matching a glob-style pattern using SCAN
// so large keyspaces are not blocked the way KEYS would.
func (s *RedisStore) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return s.wrapError("scan", pattern, err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return s.wrapError("del", pattern, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Ping verifies connectivity to Redis
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrCacheUnavailable, err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) wrapError(op, key string, err error) error {
	s.logger.Warn("Redis operation failed", map[string]any{
		"operation": op,
		"key":       key,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s %s: %v", errs.ErrCacheUnavailable, op, key, err)
}

var _ cacheport.KeyValueStore = (*RedisStore)(nil)
