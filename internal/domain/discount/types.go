package discount

import (
	"storefront-sim/internal/domain/product"

	"github.com/shopspring/decimal"
)

type SourceType string

const (
	SourceIndividual     SourceType = "individual"
	SourceBulk           SourceType = "bulk"
	SourceWeekday        SourceType = "weekday"
	SourceFlashSale      SourceType = "flash_sale"
	SourceRecommendation SourceType = "recommendation"
	SourceCombo          SourceType = "combo"
)

func (s SourceType) String() string { return string(s) }

// Item is one priced cart line fed into resolution.
type Item struct {
	ProductID product.ID
	UnitPrice decimal.Decimal
	Quantity  int
}

func (i Item) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Line struct {
	ProductID product.ID
	Rate      decimal.Decimal
	Amount    decimal.Decimal
	Source    SourceType
}

type Result struct {
	Lines         []Line
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	FinalAmount   decimal.Decimal
	Rate          decimal.Decimal
}

// LineFor returns the surviving discount line for id.
func (r Result) LineFor(id product.ID) (Line, bool) {
	for _, l := range r.Lines {
		if l.ProductID == id {
			return l, true
		}
	}
	return Line{}, false
}
