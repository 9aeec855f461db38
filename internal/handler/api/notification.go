package api

import (
	"net/http"

	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/handler/httperr"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List outstanding notifications
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 403 {object} httperr.Response
// @Router /api/supplier/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListFor(c.Request.Context(), a)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromNotificationViews(views)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Dismiss a notification
// @Tags supplier
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/supplier/notifications/{id}/ignore [post]
func (h *NotificationHandler) Ignore(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Acknowledge(c.Request.Context(), a, id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
