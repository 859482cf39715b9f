package components

import (
	"storefront-sim/internal/pkg/clock"
	"storefront-sim/internal/pkg/jwt"
	"storefront-sim/internal/usecase"
	"storefront-sim/internal/usecase/commands"
	"storefront-sim/internal/usecase/queries"
	"storefront-sim/internal/usecase/scheduler"
	"storefront-sim/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewPricingFacade,
	func(s *scheduler.Scheduler) shared.PromotionSource { return s },
	func(s *scheduler.Scheduler) shared.SelectionRecorder { return s },
	func(j *jwt.Service) shared.TokenIssuer { return j },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
