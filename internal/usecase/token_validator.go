package usecase

import (
	"storefront-sim/internal/pkg/errs"
	"storefront-sim/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrSessionRequired = errs.New("cart session required")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidSession)
	}
	return claims.CartID, nil
}
