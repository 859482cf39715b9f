package shared

import (
	"context"
	"time"

	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"

	"github.com/google/uuid"
)

type CartRepository interface {
	Save(ctx context.Context, ledger *cart.Ledger) error
	FindByID(ctx context.Context, id uuid.UUID) (*cart.Ledger, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int
}

// PromotionSource exposes the current promotion state as a value snapshot.
type PromotionSource interface {
	State() promotion.State
}

// SelectionRecorder is told about the product most recently added to any cart.
type SelectionRecorder interface {
	UpdateLastSelectedProduct(id product.ID)
}

type TokenIssuer interface {
	GenerateToken(cartID uuid.UUID) (string, error)
	TokenDuration() time.Duration
}
