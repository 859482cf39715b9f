package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront-sim/internal/handler/httperr"
	"storefront-sim/internal/pkg/cookie"
	"storefront-sim/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCartIDKey        = "cart_id"
	ctxSessionClaimsKey = "session_claims"
)

func NewSessionMiddleware(tokenValidator usecase.TokenValidator) *SessionMiddleware {
	return &SessionMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireCart resolves the cart session from the cookie or a Bearer token.
func (m *SessionMiddleware) RequireCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrSessionRequired, "Cart session required", nil)
			return
		}

		cartID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in session middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired cart session", nil)
			return
		}

		c.Set(ctxCartIDKey, cartID)
		c.Set(ctxSessionClaimsKey, map[string]any{
			"cart_id": cartID.String(),
		})
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetCartID(c *gin.Context) (uuid.UUID, bool) {
	cartID, exists := c.Get(ctxCartIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := cartID.(uuid.UUID)
	return id, ok
}
