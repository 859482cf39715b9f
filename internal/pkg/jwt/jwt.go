package jwt

import (
	"time"

	"storefront-sim/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

// Claims identify an anonymous cart session.
type Claims struct {
	CartID uuid.UUID `json:"cart_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

func (s *Service) TokenDuration() time.Duration { return s.tokenDuration }

func (s *Service) GenerateToken(cartID uuid.UUID) (string, error) {
	now := s.now()
	claims := Claims{
		CartID: cartID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cartID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errs.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.CartID == uuid.Nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
