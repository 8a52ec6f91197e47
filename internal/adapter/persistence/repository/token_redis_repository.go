package repository

import (
	"context"
	"errors"
	"time"

	"booking_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultTokenKeyPrefix = "paypal:access_token:"

// TokenRedisRepository stores provider access tokens as plain Redis strings
// with a TTL. Keys are namespaced by prefix.
type TokenRedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

var _ interfaces.ITokenCache = (*TokenRedisRepository)(nil)

func NewTokenRedisRepository(rdb redis.UniversalClient, prefix string) *TokenRedisRepository {
	if prefix == "" {
		prefix = defaultTokenKeyPrefix
	}
	return &TokenRedisRepository{rdb: rdb, prefix: prefix}
}

func (r *TokenRedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	token, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

func (r *TokenRedisRepository) Set(ctx context.Context, key, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, r.prefix+key, token, ttl).Err()
}

func (r *TokenRedisRepository) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.prefix+key).Err()
}
