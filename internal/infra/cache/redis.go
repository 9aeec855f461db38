package cache

import (
	"context"
	"encoding/json"
	"time"

	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/usecase/queries"
	"foodbridge/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sweepLockKey      = "foodbridge:lock:expiry-sweep"
	forecastKeyPrefix = "foodbridge:forecast:"
)

// releaseLockScript deletes the lock only while it still holds our token.
var releaseLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

type RedisSweepLock struct {
	client *redis.Client
	ttl    time.Duration
}

var _ shared.SweepLock = (*RedisSweepLock)(nil)

func NewRedisSweepLock(client *redis.Client, ttl time.Duration) *RedisSweepLock {
	return &RedisSweepLock{client: client, ttl: ttl}
}

func (l *RedisSweepLock) TryAcquire(ctx context.Context) (func(context.Context), bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, sweepLockKey, token, l.ttl).Result()
	if err != nil {
		return nil, false, errs.Mark(errs.Wrap(err, "acquire sweep lock"), errs.ErrUpstream)
	}
	if !ok {
		return nil, false, nil
	}

	release := func(ctx context.Context) {
		_ = releaseLockScript.Run(ctx, l.client, []string{sweepLockKey}, token).Err()
	}
	return release, true, nil
}

type RedisForecastCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ queries.ForecastCache = (*RedisForecastCache)(nil)

func NewRedisForecastCache(client *redis.Client, ttl time.Duration) *RedisForecastCache {
	return &RedisForecastCache{client: client, ttl: ttl}
}

func (c *RedisForecastCache) Get(ctx context.Context, key string) (*forecast.Forecast, bool, error) {
	raw, err := c.client.Get(ctx, forecastKeyPrefix+key).Bytes()
	if errs.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Mark(errs.Wrap(err, "read cached forecast"), errs.ErrUpstream)
	}

	var f forecast.Forecast
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, false, errs.Wrap(err, "decode cached forecast")
	}
	return &f, true, nil
}

func (c *RedisForecastCache) Set(ctx context.Context, key string, f *forecast.Forecast) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return errs.Wrap(err, "encode forecast")
	}
	if err := c.client.Set(ctx, forecastKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "write cached forecast"), errs.ErrUpstream)
	}
	return nil
}
