//go:build e2e

package cart_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-sim/internal/domain/product"
	resdto "storefront-sim/internal/handler/dto/response"
	"storefront-sim/internal/pkg/cookie"
	"storefront-sim/tests/common/builder"
	"storefront-sim/tests/common/httptest"
	"storefront-sim/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartsURL      = "/api/carts"
	cartURL       = "/api/cart"
	linesURL      = "/api/cart/lines"
	productsURL   = "/api/products"
	stockURL      = "/api/products/stock"
	promotionsURL = "/api/promotions"
)

type cartSuite struct {
	e2e.SharedSuite
}

func TestCartSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(cartSuite))
}

func (s *cartSuite) createCart() string {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, cartsURL, nil, "")

	var body resdto.CreateCartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	require.NotEmpty(s.T(), body.Token)
	require.NotNil(s.T(), httptest.ExtractCookie(rec, cookie.SessionCookieName))
	return body.Token
}

func (s *cartSuite) addLine(token string, id product.ID, qty int) *resdto.CartSummaryResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, linesURL, builder.NewAddLineRequest(id, qty), token)

	var body resdto.CartSummaryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	return &body
}

func (s *cartSuite) products() map[string]resdto.ProductResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, productsURL, nil, "")

	var body []resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	out := make(map[string]resdto.ProductResponse, len(body))
	for _, p := range body {
		out[p.ID] = p
	}
	return out
}

func (s *cartSuite) TestSingleAdd() {
	t := s.T()
	token := s.createCart()

	summary := s.addLine(token, builder.Keyboard, 1)

	require.Equal(t, int64(10000), summary.Subtotal)
	require.Equal(t, int64(10000), summary.FinalAmount)
	require.Equal(t, int64(60), summary.LoyaltyPoints)
	require.False(t, summary.DiscountDay)
	require.Equal(t, 9, s.products()[builder.Keyboard.String()].Stock)
}

func (s *cartSuite) TestStockIsSharedAcrossCarts() {
	t := s.T()
	first := s.createCart()
	second := s.createCart()

	s.addLine(first, builder.Speaker, 2)

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, linesURL, builder.NewAddLineRequest(builder.Speaker, 2), second)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Insufficient stock")

	s.addLine(second, builder.Speaker, 1)

	rec = httptest.PerformRequest(t, s.Router, http.MethodGet, stockURL, nil, "")
	var report resdto.StockReportResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &report)
	require.Equal(t, 33, report.TotalStock)
	require.Len(t, report.SoldOut, 2)
}

func (s *cartSuite) TestSoldOutProduct() {
	t := s.T()
	token := s.createCart()

	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, linesURL, builder.NewAddLineRequest(builder.Pouch, 1), token)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Insufficient stock")

	rec = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
	var summary resdto.CartSummaryResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &summary)
	require.Empty(t, summary.Lines)
	require.Equal(t, 0, s.products()[builder.Pouch.String()].Stock)
}

func (s *cartSuite) TestChangeRemoveAndClear() {
	t := s.T()
	token := s.createCart()
	s.addLine(token, builder.Keyboard, 3)
	s.addLine(token, builder.Mouse, 2)

	url := linesURL + "/" + builder.Keyboard.String()
	rec := httptest.PerformRequest(t, s.Router, http.MethodPatch, url, map[string]any{"delta": -5}, token)
	var summary resdto.CartSummaryResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &summary)
	require.Len(t, summary.Lines, 1)
	require.Equal(t, builder.Mouse.String(), summary.Lines[0].ProductID)
	require.Equal(t, 10, s.products()[builder.Keyboard.String()].Stock)

	rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
	httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Cart line not found")

	rec = httptest.PerformRequest(t, s.Router, http.MethodDelete, cartURL, nil, token)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 15, s.products()[builder.Mouse.String()].Stock)
}

func (s *cartSuite) TestBulkDiscount() {
	t := s.T()
	token := s.createCart()

	s.addLine(token, builder.Keyboard, 10)
	summary := s.addLine(token, builder.Mouse, 15)
	for _, l := range summary.DiscountLines {
		require.NotEqual(t, "bulk", l.Source)
	}

	summary = s.addLine(token, builder.MonitorArm, 5)
	require.Equal(t, 30, summary.TotalQuantity)
	require.Len(t, summary.DiscountLines, 3)
	for _, l := range summary.DiscountLines {
		require.Equal(t, "bulk", l.Source)
		require.Equal(t, 25.0, l.Rate)
	}
}

func (s *cartSuite) TestFlashSaleReachesCatalogAndCart() {
	t := s.T()
	for i := 0; i < 15 && s.Scheduler.State().FlashSaleProductID.IsZero(); i++ {
		s.Clock.Add(time.Second)
	}
	state := s.Scheduler.State()
	require.False(t, state.FlashSaleProductID.IsZero(), "flash sale never started")
	flashID := state.FlashSaleProductID.String()

	rec := httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, "")
	var promos resdto.PromotionStateResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &promos)
	require.Equal(t, flashID, promos.FlashSaleProductID)

	p := s.products()[flashID]
	require.True(t, p.IsFlashSale)
	require.Less(t, p.Price, p.OriginalPrice)

	token := s.createCart()
	summary := s.addLine(token, state.FlashSaleProductID, 1)
	require.Len(t, summary.DiscountLines, 1)
	require.Contains(t, []string{"flash_sale", "combo"}, summary.DiscountLines[0].Source)

	rec = httptest.PerformRequest(t, s.Router, http.MethodGet, promotionsURL, nil, "")
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &promos)
	require.Equal(t, flashID, promos.LastSelectedProductID)
}

func (s *cartSuite) TestSessionRequired() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, "")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Cart session required")

	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, cartURL, nil, "not-a-token")
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired cart session")
}
