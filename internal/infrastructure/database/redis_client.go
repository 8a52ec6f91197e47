package database

import (
	"context"
	"log"
	"time"

	"booking_payments/internal/config"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

// ConnectRedis creates the client backing the PayPal token cache.
//
// Relevant env vars:
//   - REDIS_ADDR (host:port; empty disables the cache entirely)
//   - REDIS_PASSWORD
//   - REDIS_DB (default: 0)
//
// An unreachable server is logged but not fatal: cache reads fail open and
// the token broker falls back to a fresh exchange.
func ConnectRedis(cfg config.TokenCache) *redis.Client {
	rdb := redis.NewClient(NewRedisOptions(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[payment][cache] redis ping failed addr=%s err=%v", cfg.Addr, err)
	} else {
		log.Printf("[payment][cache] redis connected addr=%s db=%d", cfg.Addr, cfg.DB)
	}
	return rdb
}

func NewRedisOptions(cfg config.TokenCache) *redis.Options {
	return &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 1,
		DialTimeout:  redisPingTimeout,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}
}
