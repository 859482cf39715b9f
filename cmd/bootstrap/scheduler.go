package bootstrap

import (
	"context"
	"log/slog"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"
	"storefront-sim/internal/pkg/clock"
	"storefront-sim/internal/pkg/config"
	"storefront-sim/internal/usecase/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewPromotionScheduler,
	),
	fx.Invoke(startPromotionScheduler),
)

func NewPromotionScheduler(cfg config.Config, catalog *product.Catalog, clk clock.Clock, logger *slog.Logger) (*scheduler.Scheduler, error) {
	p := cfg.Promotion
	schedCfg := scheduler.Config{
		FlashSale: scheduler.Timing{
			StartDelayMax: p.FlashSaleStartDelayMax,
			Interval:      p.FlashSaleInterval,
			Duration:      p.FlashSaleDuration,
		},
		Recommendation: scheduler.Timing{
			StartDelayMax: p.RecommendationStartDelayMax,
			Interval:      p.RecommendationInterval,
			Duration:      p.RecommendationDuration,
		},
	}
	if err := schedCfg.Validate(); err != nil {
		return nil, err
	}
	return scheduler.New(catalog, clk, scheduler.NewRandom(p.Seed), schedCfg, logger), nil
}

func startPromotionScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Initialize(scheduler.Hooks{
				OnFlashSaleChange: func(id product.ID) {
					if id.IsZero() {
						logger.Info("flash sale ended")
						return
					}
					logger.Info("flash sale started", "product_id", id)
				},
				OnRecommendationChange: func(id product.ID) {
					if id.IsZero() {
						logger.Info("recommendation ended")
						return
					}
					logger.Info("recommendation started", "product_id", id)
				},
				OnStateChange: func(state promotion.State) {
					logger.Debug("promotion state changed",
						"flash_sale", state.FlashSaleProductID,
						"recommendation", state.RecommendationProductID,
						"last_selected", state.LastSelectedProductID,
					)
				},
			})
		},
		OnStop: func(_ context.Context) error {
			s.Cleanup()
			return nil
		},
	})
}
