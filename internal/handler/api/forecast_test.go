//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/forecast"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/domain/notification"
	"foodbridge/internal/handler/api"
	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/usecase/queries"
	"foodbridge/tests/common/builder"
	"foodbridge/tests/common/httptest"
	commandsmock "foodbridge/tests/mock/commands"
	queriesmock "foodbridge/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestForecastHandler_GetForecast(t *testing.T) {
	producer := newActor(actor.RoleProducer)
	generatedAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: ranked demand with narrative", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := queriesmock.NewMockForecastQueries(ctrl)
		router := newRouter(&producer)
		router.GET("/forecast", api.NewForecastHandler(mockQueries).GetForecast)

		filter := location.Filter{City: "Pune"}
		mockQueries.EXPECT().Forecast(gomock.Any(), producer, filter).Return(&forecast.Forecast{
			TopDemandedItems: []forecast.DemandSample{
				{ItemName: "Rice", TotalRequestedQuantity: decimal.NewFromInt(120), RequestCount: 9},
				{ItemName: "Dal", TotalRequestedQuantity: decimal.NewFromInt(40), RequestCount: 3},
			},
			Narrative:   "Rice leads demand.",
			DataSource:  forecast.DataSourceHistorical,
			Region:      filter,
			WindowStart: generatedAt.Add(-30 * 24 * time.Hour),
			GeneratedAt: generatedAt,
		}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/forecast?city=Pune", nil, "")

		var response resdto.ForecastResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Len(t, response.TopDemandedFoods, 2)
		assert.Equal(t, "Rice", response.TopDemandedFoods[0].ItemName)
		assert.Equal(t, 9, response.TopDemandedFoods[0].RequestCount)
		assert.Equal(t, "Rice leads demand.", response.DemandForecastText)
		assert.Equal(t, "historical", response.DataSource)
		assert.Equal(t, "Pune", response.City)
	})

	t.Run("error: non-producer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := queriesmock.NewMockForecastQueries(ctrl)
		supplier := newActor(actor.RoleSupplier)
		router := newRouter(&supplier)
		router.GET("/forecast", api.NewForecastHandler(mockQueries).GetForecast)

		mockQueries.EXPECT().Forecast(gomock.Any(), supplier, location.Filter{}).Return(nil, actor.ErrRoleRequired)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/forecast", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "")
	})
}

func TestNotificationHandler(t *testing.T) {
	supplier := newActor(actor.RoleSupplier)

	setup := func(t *testing.T) (*commandsmock.MockNotificationCommands, *queriesmock.MockNotificationQueries, *api.NotificationHandler) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockNotificationCommands(ctrl)
		q := queriesmock.NewMockNotificationQueries(ctrl)
		return cmds, q, api.NewNotificationHandler(cmds, q)
	}

	t.Run("success: list open notifications", func(t *testing.T) {
		_, q, h := setup(t)
		router := newRouter(&supplier)
		router.GET("/notifications", h.List)

		view := builder.NewNotificationBuilder().BuildView()
		q.EXPECT().ListFor(gomock.Any(), supplier).Return([]*queries.NotificationView{view}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/notifications", nil, "")

		var response []resdto.NotificationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Len(t, response, 1)
		assert.Equal(t, view.ID, response[0].ID)
		assert.Equal(t, "near_expiry", response[0].Kind)
		assert.Equal(t, view.ItemName, response[0].ItemName)
	})

	t.Run("success: ignore acknowledges", func(t *testing.T) {
		cmds, _, h := setup(t)
		router := newRouter(&supplier)
		router.POST("/notifications/:id/ignore", h.Ignore)

		id := uuid.New()
		cmds.EXPECT().Acknowledge(gomock.Any(), supplier, id).Return(nil)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/notifications/"+id.String()+"/ignore", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("error: someone else's notification", func(t *testing.T) {
		cmds, _, h := setup(t)
		router := newRouter(&supplier)
		router.POST("/notifications/:id/ignore", h.Ignore)

		id := uuid.New()
		cmds.EXPECT().Acknowledge(gomock.Any(), supplier, id).Return(notification.ErrNotNotificationOwner)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/notifications/"+id.String()+"/ignore", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "")
	})
}
