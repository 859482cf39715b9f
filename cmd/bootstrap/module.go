package bootstrap

import (
	"storefront-sim/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	CatalogModule,
	components.RepositoryModule,
	components.UseCaseModule,
	SchedulerModule,
	components.HandlerModule,
)
