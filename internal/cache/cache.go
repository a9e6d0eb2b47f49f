package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache miss")
)

// Helper wraps a Redis client for caching serialized catalog responses.
// The in-memory store never touches the network; caching is an optional
// layer above it and every method degrades gracefully when no client is
// configured.
type Helper struct {
	client *redis.Client
	prefix string
}

func NewHelper(client *redis.Client, prefix string) *Helper {
	return &Helper{client: client, prefix: prefix}
}

// NewRedisClient connects to the Redis at url (redis:// form) and
// verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (h *Helper) key(key string) string {
	return h.prefix + ":" + key
}

// Close releases the underlying client. A nil helper or client is a
// no-op.
func (h *Helper) Close() error {
	if h == nil || h.client == nil {
		return nil
	}
	return h.client.Close()
}

// Get retrieves and unmarshals a cached value into dest.
func (h *Helper) Get(ctx context.Context, key string, dest interface{}) error {
	if h == nil || h.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := h.client.Get(ctx, h.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache unmarshal: %w", err)
	}
	return nil
}

// Set marshals and stores a value. A nil helper or client is a no-op.
func (h *Helper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if h == nil || h.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return h.client.Set(ctx, h.key(key), data, ttl).Err()
}

// Delete removes keys. A nil helper or client is a no-op.
func (h *Helper) Delete(ctx context.Context, keys ...string) error {
	if h == nil || h.client == nil || len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = h.key(k)
	}
	return h.client.Del(ctx, prefixed...).Err()
}
