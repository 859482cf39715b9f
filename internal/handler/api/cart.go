package api

import (
	"net/http"

	reqdto "storefront-sim/internal/handler/dto/request"
	resdto "storefront-sim/internal/handler/dto/response"
	"storefront-sim/internal/handler/httperr"
	"storefront-sim/internal/handler/middleware"
	"storefront-sim/internal/pkg/config"
	"storefront-sim/internal/pkg/cookie"
	"storefront-sim/internal/pkg/errs"
	"storefront-sim/internal/usecase/commands"
	"storefront-sim/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingCartContext = errs.New("cart id missing from request context")

type CartHandler struct {
	cmds      commands.CartCommands
	q         queries.CartQueries
	cookieCfg config.CookieConfig
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries, cfg config.Config) *CartHandler {
	return &CartHandler{cmds: cmds, q: q, cookieCfg: cfg.Cookie}
}

// @Summary Create cart
// @Description Open an anonymous cart session. The token is also set as an HttpOnly cookie.
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.CreateCartResponse
// @Failure 500 {object} httperr.Response
// @Router /api/carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	result, err := h.cmds.CreateCart(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.Header("Location", "/api/cart")
	c.JSON(http.StatusCreated, resdto.CreateCartResponse{
		CartID:    result.CartID.String(),
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
	})
}

// @Summary Get cart summary
// @Description Price the cart under the current promotions
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartSummaryResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart [get]
func (h *CartHandler) Summary(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}
	h.respondSummary(c, http.StatusOK, cartID)
}

// @Summary Add cart line
// @Description Add units of a product to the cart, reserving them from stock
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddLineRequest true "Add line request"
// @Success 200 {object} resdto.CartSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}
	var req reqdto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.AddItem(c.Request.Context(), cartID, req.GetProductID(), req.GetQuantity()); err != nil {
		abortWithCartError(c, err)
		return
	}
	h.respondSummary(c, http.StatusOK, cartID)
}

// @Summary Change line quantity
// @Description Apply a signed quantity delta; a line reaching zero is removed
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.ChangeQuantityRequest true "Change quantity request"
// @Success 200 {object} resdto.CartSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cart/lines/{productId} [patch]
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}
	var req reqdto.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ChangeQuantity(c.Request.Context(), cartID, productIDParam(c), req.Delta); err != nil {
		abortWithCartError(c, err)
		return
	}
	h.respondSummary(c, http.StatusOK, cartID)
}

// @Summary Remove cart line
// @Description Remove a line and return its units to stock
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartSummaryResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart/lines/{productId} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), cartID, productIDParam(c)); err != nil {
		abortWithCartError(c, err)
		return
	}
	h.respondSummary(c, http.StatusOK, cartID)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	cartID, ok := h.cartID(c)
	if !ok {
		return
	}
	if err := h.cmds.ClearCart(c.Request.Context(), cartID); err != nil {
		abortWithCartError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) cartID(c *gin.Context) (uuid.UUID, bool) {
	cartID, ok := middleware.GetCartID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingCartContext, "Unauthorized", nil)
	}
	return cartID, ok
}

func (h *CartHandler) respondSummary(c *gin.Context, status int, cartID uuid.UUID) {
	summary, err := h.q.Summary(c.Request.Context(), cartID)
	if err != nil {
		abortWithCartError(c, err)
		return
	}
	resp, err := resdto.FromCartSummary(cartID, summary)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(status, resp)
}

func abortWithCartError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrOutOfStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", nil)
	case errs.Is(err, commands.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
	case errs.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errs.Is(err, commands.ErrLineNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart line not found", nil)
	case errs.Is(err, commands.ErrCartNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
