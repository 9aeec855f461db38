package api

import (
	"net/http"

	reqdto "foodbridge/internal/handler/dto/request"
	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/handler/httperr"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Add inventory item
// @Description Add a new item in Selling status. Location defaults to the supplier's region.
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/supplier/items [post]
func (h *InventoryHandler) AddItem(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	change, err := h.cmds.AddItem(c.Request.Context(), a, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemChange(change))
}

// @Summary List own inventory
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ItemResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/supplier/items [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListInventory(c.Request.Context(), a)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.writeItems(c, views)
}

// @Summary Self-sell part of an item
// @Tags supplier
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.SellItemRequest true "Quantity sold"
// @Success 200 {object} resdto.ItemChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/supplier/items/{id}/sell [post]
func (h *InventoryHandler) SellItem(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.SellItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	change, err := h.cmds.SellItem(c.Request.Context(), a, id, req.Quantity)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemChange(change))
}

// @Summary List an item for distributors
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemChangeResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/supplier/items/{id}/list [post]
func (h *InventoryHandler) ListItem(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	change, err := h.cmds.ListItem(c.Request.Context(), a, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemChange(change))
}

// @Summary Remove an item
// @Description Refused while the item has pending requests
// @Tags supplier
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/supplier/items/{id} [delete]
func (h *InventoryHandler) RemoveItem(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), a, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Browse listed items
// @Tags distributor
// @Produce json
// @Security BearerAuth
// @Param city query string false "City (case-insensitive)"
// @Param pincode query string false "Pincode"
// @Success 200 {array} resdto.ItemResponse
// @Failure 403 {object} httperr.Response
// @Router /api/distributor/items [get]
func (h *InventoryHandler) BrowseAvailable(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	var q reqdto.RegionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	views, err := h.q.BrowseAvailable(c.Request.Context(), a, q.ToFilter())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.writeItems(c, views)
}

func (h *InventoryHandler) writeItems(c *gin.Context, views []*queries.ItemView) {
	resp, err := resdto.FromItemViews(views)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
