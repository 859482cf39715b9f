package request

import (
	"strings"

	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/pkg/patch"
)

type AddLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity,omitempty" binding:"omitempty,min=1,max=1000"`
}

func (r AddLineRequest) GetProductID() product.ID {
	return product.ID(strings.TrimSpace(r.ProductID))
}

// GetQuantity defaults to a single unit when quantity is omitted.
func (r AddLineRequest) GetQuantity() int {
	return patch.Coalesce(r.Quantity, cart.DefaultAddQuantity)
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required,min=-1000,max=1000"`
}
