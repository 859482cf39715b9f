//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storefront-sim/internal/handler/api"
	resdto "storefront-sim/internal/handler/dto/response"
	"storefront-sim/internal/pkg/config"
	"storefront-sim/internal/pkg/cookie"
	"storefront-sim/internal/pkg/errs"
	"storefront-sim/internal/usecase/commands"
	"storefront-sim/tests/common/builder"
	"storefront-sim/tests/common/httptest"
	"storefront-sim/tests/common/testutil"
	commandsmock "storefront-sim/tests/mock/commands"
	queriesmock "storefront-sim/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
	cartID       uuid.UUID
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.cartID = uuid.New()

	// Mock session middleware for testing
	sessionMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Cart session required"}})
			return
		}
		c.Set("cart_id", s.cartID)
		c.Next()
	}

	s.router.POST("/api/carts", s.handler.Create)
	cart := s.router.Group("/api/cart", sessionMiddleware)
	cart.GET("", s.handler.Summary)
	cart.DELETE("", s.handler.Clear)
	cart.POST("/lines", s.handler.AddLine)
	cart.PATCH("/lines/:productId", s.handler.ChangeQuantity)
	cart.DELETE("/lines/:productId", s.handler.RemoveLine)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

type testCaseCart struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *CartHandlerTestSuite) expectSummary() {
	s.mockQueries.EXPECT().Summary(gomock.Any(), s.cartID).
		Return(builder.SampleSummary(), nil).Times(1)
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *CartHandlerTestSuite) TestCreate() {
	url := "/api/carts"

	s.Run("success: returns 201 with token and session cookie", func() {
		s.mockCommands.EXPECT().CreateCart(gomock.Any()).
			Return(&commands.CreateCartResult{CartID: s.cartID, Token: "signed-token", ExpiresIn: 24 * time.Hour}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.CreateCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.cartID.String(), body.CartID)
		s.Equal("signed-token", body.Token)
		s.Equal(int64(86400), body.ExpiresIn)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/cart"})

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal("signed-token", sessionCookie.Value)
		s.True(sessionCookie.HttpOnly)
	})

	s.Run("error: 500 when the cart cannot be created", func() {
		s.mockCommands.EXPECT().CreateCart(gomock.Any()).
			Return(nil, errs.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestSummary
// ================================================================================

func (s *CartHandlerTestSuite) TestSummary() {
	url := "/api/cart"

	s.Run("success: returns the priced cart", func() {
		s.expectSummary()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.CartSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.cartID.String(), body.CartID)
		s.Equal(int64(10000), body.Subtotal)
		s.Equal(int64(10000), body.FinalAmount)
		s.Equal(int64(60), body.LoyaltyPoints)
		s.Require().Len(body.Lines, 1)
		s.Equal(builder.Keyboard.String(), body.Lines[0].ProductID)
		s.Equal(int64(10000), body.Lines[0].UnitPrice)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Cart session required")
	})

	s.Run("error: 404 for an unknown cart", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.cartID).
			Return(nil, errs.Wrap(commands.ErrCartNotFound, "find cart")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart not found")
	})
}

// ================================================================================
// TestAddLine
// ================================================================================

func (s *CartHandlerTestSuite) TestAddLine() {
	url := "/api/cart/lines"
	reqBody := builder.NewAddLineRequest(builder.Keyboard, 2)

	bound := []testCaseCart{
		{name: "quantity boundary OK (1)", mutate: testutil.Field("quantity", 1), expectCode: http.StatusOK},
		{name: "quantity boundary OK (1000)", mutate: testutil.Field("quantity", 1000), expectCode: http.StatusOK},
		{name: "quantity boundary invalid (0)", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		{name: "quantity boundary invalid (1001)", mutate: testutil.Field("quantity", 1001), expectCode: http.StatusBadRequest},
		{name: "negative quantity", mutate: testutil.Field("quantity", -3), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseCart{
		{name: "missing field: productId (required)", mutate: testutil.Field("productId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: quantity (defaults to 1)", mutate: testutil.Field("quantity", nil), expectCode: http.StatusOK},
	}

	allValidationTestCases := [][]testCaseCart{bound, missing}

	s.Run("success: returns the updated summary", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.cartID, builder.Keyboard, 2).Return(nil).Times(1)
		s.expectSummary()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CartSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.TotalQuantity)
	})

	s.Run("success: omitted quantity adds a single unit", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), s.cartID, builder.Keyboard, 1).Return(nil).Times(1)
		s.expectSummary()

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						s.mockCommands.EXPECT().AddItem(gomock.Any(), s.cartID, builder.Keyboard, gomock.Any()).
							Return(nil).Times(1)
						s.expectSummary()
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")

					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: domain errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"out of stock", errs.Wrap(commands.ErrOutOfStock, "reserve"), http.StatusConflict, "Insufficient stock"},
			{"unknown product", errs.Wrap(commands.ErrProductNotFound, "reserve"), http.StatusNotFound, "Product not found"},
			{"invalid quantity", commands.ErrInvalidQuantity, http.StatusBadRequest, "Invalid quantity"},
			{"unknown cart", commands.ErrCartNotFound, http.StatusNotFound, "Cart not found"},
			{"unexpected", errs.New("boom"), http.StatusInternalServerError, "Internal error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), s.cartID, builder.Keyboard, 2).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

// ================================================================================
// TestChangeQuantity
// ================================================================================

func (s *CartHandlerTestSuite) TestChangeQuantity() {
	url := "/api/cart/lines/" + builder.Keyboard.String()

	s.Run("success: applies the signed delta", func() {
		s.mockCommands.EXPECT().ChangeQuantity(gomock.Any(), s.cartID, builder.Keyboard, -1).Return(nil).Times(1)
		s.expectSummary()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": -1}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for a zero or missing delta", func() {
		for _, body := range []map[string]any{{"delta": 0}, {}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 409 when stock runs out", func() {
		s.mockCommands.EXPECT().ChangeQuantity(gomock.Any(), s.cartID, builder.Keyboard, 5).
			Return(errs.Wrap(commands.ErrOutOfStock, "reserve")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"delta": 5}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient stock")
	})
}

// ================================================================================
// TestRemoveLine / TestClear
// ================================================================================

func (s *CartHandlerTestSuite) TestRemoveLine() {
	url := "/api/cart/lines/" + builder.Mouse.String()

	s.Run("success: returns the updated summary", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.cartID, builder.Mouse).Return(nil).Times(1)
		s.expectSummary()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the line is absent", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), s.cartID, builder.Mouse).
			Return(errs.Wrap(commands.ErrLineNotFound, "remove")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart line not found")
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.mockCommands.EXPECT().ClearCart(gomock.Any(), s.cartID).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/cart", nil, "bearer-token")

	s.Equal(http.StatusNoContent, rec.Code)
}
