package api

import (
	"context"
	"net/http"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/request"
	reqdto "foodbridge/internal/handler/dto/request"
	resdto "foodbridge/internal/handler/dto/response"
	"foodbridge/internal/handler/httperr"
	"foodbridge/internal/usecase/commands"
	"foodbridge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Request part of a listed item
// @Tags distributor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFoodRequestRequest true "Food request"
// @Success 201 {object} resdto.RequestCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/distributor/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateFoodRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	created, err := h.cmds.CreateRequest(c.Request.Context(), a, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestCreated(created))
}

// @Summary List own requests
// @Tags distributor
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Opaque cursor from next_cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/distributor/requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	views, next, err := h.q.ListMine(c.Request.Context(), a, q.PageCursor(), q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.writePage(c, views, next)
}

// @Summary List requests on own items
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved or ignored"
// @Param cursor query string false "Opaque cursor from next_cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/supplier/requests [get]
func (h *RequestHandler) ListIncoming(c *gin.Context) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	var q reqdto.ListRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}
	var status *request.Status
	if q.Status != "" {
		s, err := request.NewStatus(q.Status)
		if err != nil {
			httperr.AbortWithDomainError(c, err)
			return
		}
		status = &s
	}
	views, next, err := h.q.ListIncoming(c.Request.Context(), a, status, q.PageCursor(), q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.writePage(c, views, next)
}

// @Summary Approve a pending request
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResolutionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/supplier/requests/{id}/approve [post]
func (h *RequestHandler) Approve(c *gin.Context) {
	h.resolve(c, h.cmds.Approve)
}

// @Summary Ignore a pending request
// @Tags supplier
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResolutionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/supplier/requests/{id}/ignore [post]
func (h *RequestHandler) Ignore(c *gin.Context) {
	h.resolve(c, h.cmds.Ignore)
}

// @Summary Cancel own pending request
// @Tags distributor
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResolutionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/distributor/requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	h.resolve(c, h.cmds.Cancel)
}

type resolveFunc func(ctx context.Context, a actor.Actor, id uuid.UUID) (*commands.RequestResolution, error)

func (h *RequestHandler) resolve(c *gin.Context, fn resolveFunc) {
	a, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := fn(c.Request.Context(), a, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestResolution(res))
}

func (h *RequestHandler) writePage(c *gin.Context, views []*queries.RequestView, next *queries.Cursor) {
	resp, err := resdto.FromRequestPage(views, next)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
