//go:build unit

package api_test

import (
	"foodbridge/internal/domain/actor"
	"foodbridge/internal/domain/location"
	"foodbridge/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// newRouter stands in for the auth middleware: every request runs as a.
func newRouter(a *actor.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if a != nil {
		router.Use(func(c *gin.Context) {
			middleware.SetActor(c, *a)
		})
	}
	return router
}

func newActor(roles ...actor.Role) actor.Actor {
	return actor.New(uuid.New(), roles, location.Reconstruct("Pune", "411001"))
}
