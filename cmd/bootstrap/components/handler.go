package components

import (
	"event-portal/internal/handler"
	"event-portal/internal/handler/api"
	"event-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPublicHandler,
		api.NewAdminHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
