package api

import (
	"net/http"

	reqdto "foodbridge/internal/handler/dto/request"
	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/handler/httperr"
	"foodbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ForecastHandler struct {
	q queries.ForecastQueries
}

func NewForecastHandler(q queries.ForecastQueries) *ForecastHandler {
	return &ForecastHandler{q: q}
}

// @Summary Demand forecast
// @Description Top requested foods in the region with a short narrative. Falls back to a fixed set when history is thin.
// @Tags producer
// @Produce json
// @Security BearerAuth
// @Param city query string false "City (defaults to the caller's region)"
// @Param pincode query string false "Pincode"
// @Success 200 {object} resdto.ForecastResponse
// @Failure 403 {object} httperr.Response
// @Router /api/producer/forecast [get]
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	var q reqdto.RegionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	f, err := h.q.Forecast(c.Request.Context(), a, q.ToFilter())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromForecast(f)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
