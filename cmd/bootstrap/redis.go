package bootstrap

import (
	"context"
	"log/slog"

	"foodbridge/internal/infra/cache"
	"foodbridge/internal/pkg/config"
	"foodbridge/internal/usecase/queries"
	"foodbridge/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewSweepLock,
		NewForecastCache,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis.Addr == "" {
		logger.Info("redis disabled: sweep runs unlocked and forecasts are not cached")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewSweepLock(client *redis.Client, cfg config.Config) shared.SweepLock {
	if client == nil {
		return cache.LocalSweepLock{}
	}
	return cache.NewRedisSweepLock(client, cfg.Expiry.LockTTL)
}

func NewForecastCache(client *redis.Client, cfg config.Config) queries.ForecastCache {
	if client == nil {
		return cache.NopForecastCache{}
	}
	return cache.NewRedisForecastCache(client, cfg.Forecast.CacheTTL)
}
