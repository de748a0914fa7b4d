package redis

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
