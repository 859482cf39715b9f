//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"storefront-sim/cmd/bootstrap"
	"storefront-sim/cmd/bootstrap/components"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/pkg/clock"
	"storefront-sim/internal/pkg/config"
	"storefront-sim/internal/usecase/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// Monday 12:00 in Seoul, so no discount day applies unless a test moves the clock.
var StartTime = time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// Build the full application in process with a simulated clock
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *clock.MockClock, *scheduler.Scheduler, *product.Catalog) {
	gin.SetMode(gin.TestMode)

	clk := clock.NewMockClock(StartTime)
	router, cfg, sched, catalog, app := buildE2EApp(clk)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return router, cfg, clk, sched, catalog
}

// ------------------------------------------------------------
// Returns router, config, scheduler, catalog and fx.App for lifecycle management
// ------------------------------------------------------------
func buildE2EApp(clk *clock.MockClock) (*gin.Engine, config.Config, *scheduler.Scheduler, *product.Catalog, *fx.App) {
	var (
		router  *gin.Engine
		cfg     config.Config
		sched   *scheduler.Scheduler
		catalog *product.Catalog
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CatalogModule,
		components.RepositoryModule,
		components.UseCaseModule,
		bootstrap.SchedulerModule,
		components.HandlerModule,

		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),
		fx.Populate(&router, &cfg, &sched, &catalog),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, sched, catalog, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites. Every test method gets a fresh
// application, so stock and promotions start from the seed state.
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router    *gin.Engine
	Config    config.Config
	Clock     *clock.MockClock
	Scheduler *scheduler.Scheduler
	Catalog   *product.Catalog
}

func (s *SharedSuite) SetupTest() {
	s.Router, s.Config, s.Clock, s.Scheduler, s.Catalog = setupE2EEnvironment(s.T())
	require.NotEmpty(s.T(), s.Config.JWT.Secret, "config not loaded")
}
