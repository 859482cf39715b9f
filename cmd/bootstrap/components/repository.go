package components

import (
	"storefront-sim/internal/infra/repository"
	"storefront-sim/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCartRepository,
			fx.As(new(shared.CartRepository)),
		),
	),
)
