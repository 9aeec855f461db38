package components

import (
	"foodbridge/internal/handler"
	"foodbridge/internal/handler/api"
	"foodbridge/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInventoryHandler,
		api.NewRequestHandler,
		api.NewNotificationHandler,
		api.NewForecastHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
