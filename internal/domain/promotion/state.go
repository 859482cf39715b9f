package promotion

import (
	"storefront-sim/internal/domain/product"

	"github.com/shopspring/decimal"
)

var (
	FlashSaleRate      = decimal.RequireFromString("0.20")
	RecommendationRate = decimal.RequireFromString("0.05")
)

type Kind string

const (
	KindFlashSale      Kind = "flash_sale"
	KindRecommendation Kind = "recommendation"
)

// State is a value snapshot; an empty ID means the slot is unset.
type State struct {
	FlashSaleProductID      product.ID `json:"flashSaleProductId"`
	RecommendationProductID product.ID `json:"recommendationProductId"`
	LastSelectedProductID   product.ID `json:"lastSelectedProductId"`
}

func (s State) IsFlashSale(id product.ID) bool {
	return !id.IsZero() && s.FlashSaleProductID == id
}

func (s State) IsRecommended(id product.ID) bool {
	return !id.IsZero() && s.RecommendationProductID == id
}

// IsCombo reports whether both promotions currently target id.
func (s State) IsCombo(id product.ID) bool {
	return s.IsFlashSale(id) && s.IsRecommended(id)
}

// ComboProductID returns the product both promotions target, if any.
func (s State) ComboProductID() (product.ID, bool) {
	if s.FlashSaleProductID.IsZero() || s.FlashSaleProductID != s.RecommendationProductID {
		return "", false
	}
	return s.FlashSaleProductID, true
}

// DisplayPrice derives the shelf price for id. Flash sale applies to the
// original price, recommendation applies on top of whatever price is current.
// Both round to whole currency units.
func (s State) DisplayPrice(id product.ID, original decimal.Decimal) decimal.Decimal {
	price := original
	if s.IsFlashSale(id) {
		price = price.Mul(decimal.NewFromInt(1).Sub(FlashSaleRate)).Round(0)
	}
	if s.IsRecommended(id) {
		price = price.Mul(decimal.NewFromInt(1).Sub(RecommendationRate)).Round(0)
	}
	return price
}
