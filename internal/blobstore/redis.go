package blobstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/simgeozgundondu/product-management-app/pkg/redis"
)

// Redis persists blobs under a namespaced key in Redis, the primary backend.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an established redis client.
func NewRedis(client *redis.Client) (*Redis, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &Redis{client: client}, nil
}

// Load fetches the serialized collection stored under key.
func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.client.CollectionKey(key))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(value), nil
}

// Save replaces the serialized collection stored under key. No TTL: the
// collection lives until overwritten, like a browser's local storage entry.
func (r *Redis) Save(ctx context.Context, key string, blob []byte) error {
	if err := r.client.Set(ctx, r.client.CollectionKey(key), string(blob), 0); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}
