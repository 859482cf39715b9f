package components

import (
	"storefront-sim/internal/handler"
	"storefront-sim/internal/handler/api"
	"storefront-sim/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCatalogHandler,
		middleware.NewSessionMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
