package queries

import (
	"storefront-sim/internal/domain/product"

	"github.com/shopspring/decimal"
)

// ProductView is a product as shown on the shelf, with promotion flags and
// display price derived from the current promotion state.
type ProductView struct {
	ID            product.ID
	Name          string
	Category      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Stock         int
	StockStatus   product.StockStatus
	IsFlashSale   bool
	IsRecommended bool
}

func (v ProductView) IsCombo() bool { return v.IsFlashSale && v.IsRecommended }

type StockNotice struct {
	ID     product.ID
	Name   string
	Stock  int
	Status product.StockStatus
}

type StockReportView struct {
	LowStock   []StockNotice
	SoldOut    []StockNotice
	TotalStock int
}
