package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodbridge/internal/domain/actor"
	"foodbridge/internal/handler/api"
	"foodbridge/internal/handler/middleware"
	"foodbridge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Inventory    *api.InventoryHandler
	Request      *api.RequestHandler
	Notification *api.NotificationHandler
	Forecast     *api.ForecastHandler
}

func NewHandlers(
	inventory *api.InventoryHandler,
	request *api.RequestHandler,
	notification *api.NotificationHandler,
	forecast *api.ForecastHandler,
) Handlers {
	return Handlers{
		Inventory:    inventory,
		Request:      request,
		Notification: notification,
		Forecast:     forecast,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		supplier := apiGroup.Group("/supplier")
		supplier.Use(authMiddleware.RequireRole(actor.RoleSupplier))
		addRoutes(supplier, []route{
			{Method: http.MethodPost, Path: "/items", Handler: h.Inventory.AddItem},
			{Method: http.MethodGet, Path: "/items", Handler: h.Inventory.ListInventory},
			{Method: http.MethodPost, Path: "/items/:id/sell", Handler: h.Inventory.SellItem},
			{Method: http.MethodPost, Path: "/items/:id/list", Handler: h.Inventory.ListItem},
			{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Inventory.RemoveItem},
			{Method: http.MethodGet, Path: "/notifications", Handler: h.Notification.List},
			{Method: http.MethodPost, Path: "/notifications/:id/ignore", Handler: h.Notification.Ignore},
			{Method: http.MethodGet, Path: "/requests", Handler: h.Request.ListIncoming},
			{Method: http.MethodPost, Path: "/requests/:id/approve", Handler: h.Request.Approve},
			{Method: http.MethodPost, Path: "/requests/:id/ignore", Handler: h.Request.Ignore},
		})

		distributor := apiGroup.Group("/distributor")
		distributor.Use(authMiddleware.RequireRole(actor.RoleDistributor))
		addRoutes(distributor, []route{
			{Method: http.MethodGet, Path: "/items", Handler: h.Inventory.BrowseAvailable},
			{Method: http.MethodPost, Path: "/requests", Handler: h.Request.CreateRequest},
			{Method: http.MethodGet, Path: "/requests", Handler: h.Request.ListMine},
			{Method: http.MethodPost, Path: "/requests/:id/cancel", Handler: h.Request.Cancel},
		})

		producer := apiGroup.Group("/producer")
		producer.Use(authMiddleware.RequireRole(actor.RoleProducer))
		addRoutes(producer, []route{
			{Method: http.MethodGet, Path: "/forecast", Handler: h.Forecast.GetForecast},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
