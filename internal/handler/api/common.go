package api

import (
	"net/http"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/handler/httperr"
	"foodbridge/internal/handler/middleware"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errors.New("actor missing from context")

func currentActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return actor.Actor{}, false
	}
	return a, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", gin.H{"code": "validation"})
		return uuid.Nil, false
	}
	return id, true
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"code": "validation"})
}
