package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/config"
)

// NewClient connects to Redis using the loaded configuration and verifies
// the connection with a ping.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisHost + ":" + cfg.RedisPort

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
