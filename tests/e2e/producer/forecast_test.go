//go:build e2e

package producer_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/location"
	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/infra/cache"
	"foodbridge/tests/common/authtest"
	"foodbridge/tests/common/builder"
	"foodbridge/tests/common/dbtest"
	"foodbridge/tests/common/httptest"
	"foodbridge/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const forecastURL = "/api/producer/forecast"

type ProducerSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ProducerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ProducerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestProducerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ProducerSuite))
}

func (s *ProducerSuite) seedDemand(t *testing.T, name, city string, qty int64, n int) {
	t.Helper()
	item := builder.NewItemBuilder().WithName(name).WithRegion(city, "411001").AsListing()
	for range n {
		dbtest.InsertRequest(t, s.DB, builder.NewRequestBuilder().ForItem(item).WithQuantity(qty))
	}
}

// =============================================================================
// TestForecast - demand ranking, fallback and caching
// =============================================================================

func (s *ProducerSuite) TestForecast() {
	s.Run("Normal case: ranks regional demand from request history", func() {
		t := s.T()

		s.seedDemand(t, "Rice", "Pune", 5, 3)
		s.seedDemand(t, "Dal", "Pune", 2, 2)
		s.seedDemand(t, "Wheat", "Mumbai", 50, 3)

		token := s.jwt.GenerateTokenInRegion(t, uuid.New(), location.Reconstruct("Pune", ""), actor.RoleProducer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL, nil, token)
		var got resdto.ForecastResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		assert.Equal(t, "historical", got.DataSource)
		assert.Equal(t, "pune", got.City)
		require.Len(t, got.TopDemandedFoods, 2)
		assert.Equal(t, "Rice", got.TopDemandedFoods[0].ItemName)
		assert.True(t, decimal.NewFromInt(15).Equal(got.TopDemandedFoods[0].TotalRequestedQuantity))
		assert.Equal(t, 3, got.TopDemandedFoods[0].RequestCount)
		assert.Equal(t, "Dal", got.TopDemandedFoods[1].ItemName)
		assert.NotEmpty(t, got.DemandForecastText)
	})

	s.Run("Normal case: thin history falls back to the default set", func() {
		t := s.T()

		s.seedDemand(t, "Rice", "Pune", 5, 1)

		token := s.jwt.GenerateToken(t, uuid.New(), actor.RoleProducer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL+"?city=Pune", nil, token)
		var got resdto.ForecastResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		assert.Equal(t, "fallback", got.DataSource)
		assert.NotEmpty(t, got.TopDemandedFoods)
	})

	s.Run("Normal case: forecast is cached per region", func() {
		t := s.T()
		ctx := context.Background()

		s.seedDemand(t, "Rice", "Pune", 5, 3)
		token := s.jwt.GenerateToken(t, uuid.New(), actor.RoleProducer)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL+"?city=Pune", nil, token)
		var first resdto.ForecastResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)

		keys, err := s.Redis.Keys(ctx, "foodbridge:forecast:*").Result()
		require.NoError(t, err)
		assert.Equal(t, []string{"foodbridge:forecast:pune|"}, keys)

		// new history is not visible until the cached entry expires
		s.seedDemand(t, "Dal", "Pune", 40, 3)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL+"?city=Pune", nil, token)
		var second resdto.ForecastResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.TopDemandedFoods, 1)
		assert.Equal(t, "Rice", second.TopDemandedFoods[0].ItemName)
		assert.True(t, first.GeneratedAt.Equal(second.GeneratedAt))
	})

	s.Run("Error case: non-producer is forbidden", func() {
		t := s.T()

		token := s.jwt.GenerateToken(t, uuid.New(), actor.RoleSupplier)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: missing and expired tokens are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")

		expired := s.jwt.CreateExpiredToken(t, uuid.New(), actor.RoleProducer)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, forecastURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
	})
}

// =============================================================================
// TestSweepLock - only one replica runs the expiry sweep at a time
// =============================================================================

func (s *ProducerSuite) TestSweepLock() {
	s.Run("Normal case: lock is exclusive until released", func() {
		t := s.T()
		ctx := context.Background()

		first := cache.NewRedisSweepLock(s.Redis, 5*time.Second)
		second := cache.NewRedisSweepLock(s.Redis, 5*time.Second)

		release, ok, err := first.TryAcquire(ctx)
		require.NoError(t, err)
		require.True(t, ok)

		_, ok, err = second.TryAcquire(ctx)
		require.NoError(t, err)
		assert.False(t, ok)

		release(ctx)

		releaseAgain, ok, err := second.TryAcquire(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		releaseAgain(ctx)
	})
}
