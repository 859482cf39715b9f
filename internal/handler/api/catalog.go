package api

import (
	"net/http"
	"strings"

	"storefront-sim/internal/domain/product"
	resdto "storefront-sim/internal/handler/dto/response"
	"storefront-sim/internal/handler/httperr"
	"storefront-sim/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List products
// @Description Products with display price, stock and promotion flags
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	views, err := h.q.Products(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp, err := resdto.FromProductViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Stock report
// @Description Low-stock and sold-out products with total stock
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.StockReportResponse
// @Router /api/products/stock [get]
func (h *CatalogHandler) StockReport(c *gin.Context) {
	report, err := h.q.StockReport(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	resp, err := resdto.FromStockReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Current promotions
// @Description Flash sale, recommendation and last selected product
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.PromotionStateResponse
// @Router /api/promotions [get]
func (h *CatalogHandler) Promotions(c *gin.Context) {
	state, err := h.q.Promotions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotionState(state))
}

func productIDParam(c *gin.Context) product.ID {
	return product.ID(strings.TrimSpace(c.Param("productId")))
}
