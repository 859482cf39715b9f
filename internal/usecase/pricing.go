package usecase

import (
	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/domain/discount"
	"storefront-sim/internal/domain/loyalty"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"
	"storefront-sim/internal/pkg/clock"
	"storefront-sim/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type SummaryLine struct {
	ProductID product.ID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	ItemTotal decimal.Decimal
}

// CartSummary is fully derived from a ledger snapshot and a promotion state.
type CartSummary struct {
	Lines           []SummaryLine
	Subtotal        decimal.Decimal
	TotalQuantity   int
	DiscountLines   []discount.Line
	TotalDiscount   decimal.Decimal
	FinalAmount     decimal.Decimal
	DiscountRate    decimal.Decimal
	DiscountDay     bool
	LoyaltyPoints   int64
	PointsBreakdown []loyalty.Entry
}

type PricingFacade struct {
	catalog   *product.Catalog
	discounts *discount.Engine
	loyalty   *loyalty.Calculator
	clock     clock.Clock
}

func NewPricingFacade(catalog *product.Catalog, discounts *discount.Engine, points *loyalty.Calculator, clk clock.Clock) *PricingFacade {
	return &PricingFacade{
		catalog:   catalog,
		discounts: discounts,
		loyalty:   points,
		clock:     clk,
	}
}

// GetSummary prices lines under state. It reads the catalog but never mutates
// it, so identical inputs at the same instant give identical summaries.
func (f *PricingFacade) GetSummary(lines []cart.Line, state promotion.State) (*CartSummary, error) {
	now := f.clock.Now()

	summary := &CartSummary{
		Lines:           make([]SummaryLine, 0, len(lines)),
		Subtotal:        decimal.Zero,
		PointsBreakdown: []loyalty.Entry{},
	}
	items := make([]discount.Item, 0, len(lines))
	ids := make([]product.ID, 0, len(lines))

	for _, l := range lines {
		p, err := f.catalog.Get(l.ProductID)
		if err != nil {
			return nil, errs.Wrap(err, "price cart line")
		}
		item := discount.Item{ProductID: p.ID, UnitPrice: p.OriginalPrice, Quantity: l.Quantity}
		items = append(items, item)
		ids = append(ids, p.ID)

		summary.Lines = append(summary.Lines, SummaryLine{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.OriginalPrice,
			Quantity:  l.Quantity,
			ItemTotal: item.Total(),
		})
		summary.TotalQuantity += l.Quantity
	}

	resolved := f.discounts.Resolve(items, state, now)
	summary.Subtotal = resolved.Subtotal
	summary.DiscountLines = resolved.Lines
	summary.TotalDiscount = resolved.TotalDiscount
	summary.FinalAmount = resolved.FinalAmount
	summary.DiscountRate = resolved.Rate
	summary.DiscountDay = f.discounts.Policy().IsDiscountDay(now)

	points := f.loyalty.Calculate(resolved.FinalAmount, summary.TotalQuantity, ids, now)
	summary.LoyaltyPoints = points.Points
	summary.PointsBreakdown = points.Breakdown

	return summary, nil
}
