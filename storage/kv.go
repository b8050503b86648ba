package storage

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// KV is the key-value store every collection is persisted in. Values are
// whole serialized collections; there are no partial updates and the last
// writer wins. A missing key reads as the empty string.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// RedisKV persists collections as plain string keys in Redis.
type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrapf(err, "kv get %s", key)
	}
	return value, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "kv set %s", key)
	}
	return nil
}

// MemoryKV is an in-process KV used by tests and as a substitute store.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MemoryKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
