//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/inventory"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/handler/api"
	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"
	"foodbridge/tests/common/builder"
	"foodbridge/tests/common/httptest"
	"foodbridge/tests/common/testutil"
	commandsmock "foodbridge/tests/mock/commands"
	queriesmock "foodbridge/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	mockQueries  *queriesmock.MockInventoryQueries
	handler      *api.InventoryHandler
	actor        actor.Actor
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	s.actor = newActor(actor.RoleSupplier, actor.RoleDistributor)
	s.router = newRouter(&s.actor)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/items", s.handler.AddItem)
	s.router.GET("/items", s.handler.ListInventory)
	s.router.GET("/available", s.handler.BrowseAvailable)
	s.router.POST("/items/:id/sell", s.handler.SellItem)
	s.router.POST("/items/:id/list", s.handler.ListItem)
	s.router.DELETE("/items/:id", s.handler.RemoveItem)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) TestAddItem() {
	url := "/items"
	itemB := builder.NewItemBuilder()
	reqBody := itemB.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the new item", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Actor, cmd commands.AddItemRequest) (*commands.ItemChange, error) {
				s.Equal(itemB.Name, cmd.Name)
				s.True(itemB.Quantity.Equal(cmd.Quantity))
				if s.NotNil(cmd.City) {
					s.Equal("Pune", *cmd.City)
				}
				return &commands.ItemChange{
					ItemID:   itemB.ID,
					Status:   inventory.StatusSelling,
					Quantity: cmd.Quantity,
					Version:  1,
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ItemChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(itemB.ID, response.ItemID)
		s.Equal("selling", response.Status)
		s.False(response.Removed)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "name over 120 chars", mutate: testutil.Field("name", strings.Repeat("a", 121))},
			{name: "city over 80 chars", mutate: testutil.Field("city", strings.Repeat("c", 81))},
			{name: "best_before_at not a timestamp", mutate: testutil.Field("best_before_at", "tomorrow")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: validation from the domain", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.actor, gomock.Any()).Return(nil, inventory.ErrQuantityPrecision)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, inventory.ErrQuantityPrecision.Error())
	})
}

func (s *InventoryHandlerTestSuite) TestSellItem() {
	itemID := uuid.New()
	url := "/items/" + itemID.String() + "/sell"

	s.Run("success: returns remaining quantity", func() {
		s.mockCommands.EXPECT().SellItem(gomock.Any(), s.actor, itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ actor.Actor, _ uuid.UUID, qty decimal.Decimal) (*commands.ItemChange, error) {
				s.Equal("2.5", qty.String())
				return &commands.ItemChange{ItemID: itemID, Status: inventory.StatusSelling, Quantity: decimal.RequireFromString("7.5"), Version: 2}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": "2.5"}, "")

		var response resdto.ItemChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("7.5", response.Quantity.String())
		s.Equal(int64(2), response.Version)
	})

	s.Run("success: selling everything removes the item", func() {
		s.mockCommands.EXPECT().SellItem(gomock.Any(), s.actor, itemID, gomock.Any()).
			Return(&commands.ItemChange{ItemID: itemID, Status: inventory.StatusSelling, Quantity: decimal.Zero, Removed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": "10"}, "")

		var response resdto.ItemChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Removed)
	})

	s.Run("error: more than available", func() {
		s.mockCommands.EXPECT().SellItem(gomock.Any(), s.actor, itemID, gomock.Any()).Return(nil, inventory.ErrInsufficientQuantity)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"quantity": "99"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "insufficient quantity")
	})
}

func (s *InventoryHandlerTestSuite) TestListAndRemove() {
	itemID := uuid.New()

	s.Run("success: list an item", func() {
		s.mockCommands.EXPECT().ListItem(gomock.Any(), s.actor, itemID).
			Return(&commands.ItemChange{ItemID: itemID, Status: inventory.StatusListing, Quantity: decimal.NewFromInt(10), Version: 2}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/list", nil, "")

		var response resdto.ItemChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("listing", response.Status)
	})

	s.Run("error: listing a retired item", func() {
		s.mockCommands.EXPECT().ListItem(gomock.Any(), s.actor, itemID).Return(nil, inventory.ErrItemRetired)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/items/"+itemID.String()+"/list", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "retired")
	})

	s.Run("success: remove returns 204", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.actor, itemID).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/"+itemID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: removing with pending requests", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.actor, itemID).Return(inventory.ErrPendingRequests)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/items/"+itemID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "pending requests")
	})
}

func (s *InventoryHandlerTestSuite) TestReads() {
	s.Run("success: own inventory", func() {
		views := []*queries.ItemView{builder.NewItemBuilder().BuildView(), builder.NewItemBuilder().AsListing().BuildView()}
		s.mockQueries.EXPECT().ListInventory(gomock.Any(), s.actor).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "")

		var response []resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[1].ID, response[1].ID)
		s.Equal("listing", response[1].Status)
	})

	s.Run("success: browse passes the region filter", func() {
		s.mockQueries.EXPECT().BrowseAvailable(gomock.Any(), s.actor, location.Filter{City: "Mumbai", Pincode: "400001"}).
			Return([]*queries.ItemView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/available?city=Mumbai&pincode=400001", nil, "")

		var response []resdto.ItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: unexpected failure hides details", func() {
		s.mockQueries.EXPECT().ListInventory(gomock.Any(), s.actor).Return(nil, context.DeadlineExceeded)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
