package queries

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/pkg/clock"
	"foodbridge/internal/pkg/errs"
)

type ForecastSettings struct {
	Window     time.Duration
	TopN       int
	MinSamples int
}

type ForecastQueries interface {
	Forecast(ctx context.Context, a actor.Actor, filter location.Filter) (*forecast.Forecast, error)
}

type forecastQueriesImpl struct {
	history  DemandHistoryReadStore
	narrator forecast.NarrativeGenerator
	cache    ForecastCache
	clock    clock.Clock
	settings ForecastSettings
}

func NewForecastQueries(
	history DemandHistoryReadStore,
	narrator forecast.NarrativeGenerator,
	cache ForecastCache,
	clk clock.Clock,
	settings ForecastSettings,
) ForecastQueries {
	return &forecastQueriesImpl{
		history:  history,
		narrator: narrator,
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

// Forecast ranks recent demand in the region. Thin history yields the fallback
// set, and a failing narrative generator degrades to the template text.
func (q *forecastQueriesImpl) Forecast(ctx context.Context, a actor.Actor, filter location.Filter) (*forecast.Forecast, error) {
	if err := a.Require(actor.RoleProducer); err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		filter = location.Filter{City: a.Region.City(), Pincode: a.Region.Pincode()}
	}
	filter = filter.Normalize()
	cacheKey := filter.Key()

	if q.cache != nil {
		cached, ok, err := q.cache.Get(ctx, cacheKey)
		if err != nil {
			slog.Warn("forecast cache read failed", "region", cacheKey, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	now := q.clock.Now()
	since := now.Add(-q.settings.Window)
	samples, err := q.history.AggregateDemand(ctx, since, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate demand")
	}

	total := 0
	for _, s := range samples {
		total += s.RequestCount
	}

	result := &forecast.Forecast{
		Region:      filter,
		WindowStart: since,
		GeneratedAt: now,
	}
	if total < q.settings.MinSamples {
		result.TopDemandedItems = forecast.FallbackSamples(q.settings.TopN)
		result.DataSource = forecast.DataSourceFallback
	} else {
		result.TopDemandedItems = forecast.Rank(samples, q.settings.TopN)
		result.DataSource = forecast.DataSourceHistorical
	}
	result.Narrative = q.narrate(ctx, result.TopDemandedItems)

	if q.cache != nil {
		if err := q.cache.Set(ctx, cacheKey, result); err != nil {
			slog.Warn("forecast cache write failed", "region", cacheKey, "error", err)
		}
	}
	return result, nil
}

func (q *forecastQueriesImpl) narrate(ctx context.Context, samples []forecast.DemandSample) string {
	if q.narrator == nil {
		return forecast.TemplateNarrative(samples)
	}
	text, err := q.narrator.Generate(ctx, samples)
	if err != nil || text == "" {
		slog.Warn("narrative generator unavailable, using template",
			"upstream", errs.Is(err, errs.ErrUpstream),
			"error", err)
		return forecast.TemplateNarrative(samples)
	}
	return text
}
