package bootstrap

import (
	"log/slog"

	"storefront-sim/internal/domain/discount"
	"storefront-sim/internal/domain/loyalty"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/infra/catalogfile"
	"storefront-sim/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalogDefinition,
		NewCatalog,
		NewDiscountEngine,
		NewLoyaltyCalculator,
	),
)

func NewCatalogDefinition(cfg config.Config, logger *slog.Logger) (*catalogfile.Definition, error) {
	def, err := catalogfile.Load(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	source := cfg.Catalog.File
	if source == "" {
		source = "embedded"
	}
	logger.Info("catalog loaded", "source", source, "products", len(def.Seeds))
	return def, nil
}

func NewCatalog(def *catalogfile.Definition) (*product.Catalog, error) {
	return def.NewCatalog()
}

func NewDiscountEngine(cfg config.Config, def *catalogfile.Definition) *discount.Engine {
	policy := discount.DefaultPolicy().WithIndividualRates(def.IndividualRates)
	policy.Location = cfg.Pricing.Location()
	return discount.NewEngine(policy)
}

func NewLoyaltyCalculator(cfg config.Config, def *catalogfile.Definition) *loyalty.Calculator {
	set := def.SetProducts
	policy := loyalty.DefaultPolicy().WithSetProducts(set.Keyboard, set.Mouse, set.MonitorArm)
	policy.Location = cfg.Pricing.Location()
	return loyalty.NewCalculator(policy)
}
