package cache

import (
	"context"

	"foodbridge/internal/domain/forecast"
)

// LocalSweepLock always succeeds; used when no Redis is configured and a single instance runs the sweep.
type LocalSweepLock struct{}

func (LocalSweepLock) TryAcquire(context.Context) (func(context.Context), bool, error) {
	return func(context.Context) {}, true, nil
}

type NopForecastCache struct{}

func (NopForecastCache) Get(context.Context, string) (*forecast.Forecast, bool, error) {
	return nil, false, nil
}

func (NopForecastCache) Set(context.Context, string, *forecast.Forecast) error { return nil }
