package discount

import (
	"time"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

type Policy struct {
	IndividualThreshold int
	BulkThreshold       int

	BulkRate           decimal.Decimal
	WeekdayRate        decimal.Decimal
	FlashSaleRate      decimal.Decimal
	RecommendationRate decimal.Decimal
	ComboRate          decimal.Decimal

	IndividualRates map[product.ID]decimal.Decimal

	DiscountDay time.Weekday
	Location    *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		IndividualThreshold: 10,
		BulkThreshold:       30,
		BulkRate:            decimal.RequireFromString("0.25"),
		WeekdayRate:         decimal.RequireFromString("0.10"),
		FlashSaleRate:       promotion.FlashSaleRate,
		RecommendationRate:  promotion.RecommendationRate,
		ComboRate:           decimal.RequireFromString("0.25"),
		IndividualRates:     map[product.ID]decimal.Decimal{},
		DiscountDay:         time.Tuesday,
		Location:            time.UTC,
	}
}

func (p Policy) WithIndividualRates(rates map[product.ID]decimal.Decimal) Policy {
	copied := make(map[product.ID]decimal.Decimal, len(rates))
	for id, r := range rates {
		copied[id] = r
	}
	p.IndividualRates = copied
	return p
}

// IsDiscountDay reports whether now falls on the discount weekday in the policy's zone.
func (p Policy) IsDiscountDay(now time.Time) bool {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Weekday() == p.DiscountDay
}

func (p Policy) individualRate(id product.ID) decimal.Decimal {
	if r, ok := p.IndividualRates[id]; ok {
		return r
	}
	return decimal.Zero
}
