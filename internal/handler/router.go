package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront-sim/internal/handler/api"
	"storefront-sim/internal/handler/middleware"
	"storefront-sim/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Cart    *api.CartHandler
	Catalog *api.CatalogHandler
	Session *middleware.SessionMiddleware
}

func NewHandlers(cart *api.CartHandler, catalog *api.CatalogHandler, session *middleware.SessionMiddleware) Handlers {
	return Handlers{Cart: cart, Catalog: catalog, Session: session}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/products/stock", Handler: h.Catalog.StockReport},
			{Method: http.MethodGet, Path: "/promotions", Handler: h.Catalog.Promotions},
			{Method: http.MethodPost, Path: "/carts", Handler: h.Cart.Create},
		})

		cart := apiGroup.Group("/cart")
		cart.Use(h.Session.RequireCart())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Summary},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/lines", Handler: h.Cart.AddLine},
				{Method: http.MethodPatch, Path: "/lines/:productId", Handler: h.Cart.ChangeQuantity},
				{Method: http.MethodDelete, Path: "/lines/:productId", Handler: h.Cart.RemoveLine},
			})
		}
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
