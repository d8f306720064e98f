package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"goldhouse_backend/internal/platform/config"
)

// NewRedisClient connects to Redis using the provided settings.
// Returns nil without error when no address is configured; the identity
// cache degrades to a passthrough in that case.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr)
	return rdb, nil
}
