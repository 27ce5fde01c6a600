package repository

import (
	"context"
	"time"
)

// CacheRepository - байтовый кеш с TTL для ответов внешних провайдеров
type CacheRepository interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
