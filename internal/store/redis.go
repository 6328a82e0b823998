package store

import (
	"context"
	"time"

	"github.com/flortune/app-settings/internal/redisclient"
	"github.com/redis/go-redis/v9"
)

// RedisKV is the Redis-backed bridge used in production.
type RedisKV struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisKV creates a bridge over the given traced Redis client. A zero
// ttl keeps settings forever.
func NewRedisKV(client *redisclient.Client, ttl time.Duration) *RedisKV {
	return &RedisKV{client: client, ttl: ttl}
}

// Read returns the raw value for key
func (s *RedisKV) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Write persists value under key
func (s *RedisKV) Write(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

// Delete removes key
func (s *RedisKV) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
