package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss - ключа нет (или истёк его TTL).
var ErrCacheMiss = errors.New("cache: key not found")

// CacheRepositoryInterface хранит серверные сессии и счётчики неудачных входов.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}
