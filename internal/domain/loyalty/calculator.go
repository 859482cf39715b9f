package loyalty

import (
	"time"

	"storefront-sim/internal/domain/product"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBase       Kind = "base"
	KindWeekday    Kind = "weekday"
	KindSet        Kind = "set"
	KindFullSet    Kind = "full_set"
	KindQuantity   Kind = "quantity"
	KindContinuous Kind = "continuous"
)

type Entry struct {
	Kind   Kind
	Points int64
}

type Result struct {
	Points    int64
	Breakdown []Entry
}

type QuantityTier struct {
	MinQuantity int
	Points      int64
}

// SetRule grants Points when every product in Products is in the cart.
type SetRule struct {
	Kind     Kind
	Products []product.ID
	Points   int64
}

type Policy struct {
	BaseRate       decimal.Decimal
	ContinuousRate decimal.Decimal
	BonusDay       time.Weekday
	Location       *time.Location
	// Checked in order; the first satisfied rule wins.
	SetRules []SetRule
	// Checked in order; the first tier reached wins.
	QuantityTiers []QuantityTier
}

func DefaultPolicy() Policy {
	return Policy{
		BaseRate:       decimal.RequireFromString("0.001"),
		ContinuousRate: decimal.RequireFromString("0.005"),
		BonusDay:       time.Tuesday,
		Location:       time.UTC,
		QuantityTiers: []QuantityTier{
			{MinQuantity: 30, Points: 100},
			{MinQuantity: 20, Points: 50},
			{MinQuantity: 10, Points: 20},
		},
	}
}

// WithSetProducts installs the keyboard/mouse(/monitor arm) set rules.
func (p Policy) WithSetProducts(keyboard, mouse, monitorArm product.ID) Policy {
	p.SetRules = []SetRule{
		{Kind: KindFullSet, Products: []product.ID{keyboard, mouse, monitorArm}, Points: 100},
		{Kind: KindSet, Products: []product.ID{keyboard, mouse}, Points: 50},
	}
	return p
}

type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

func (c *Calculator) Policy() Policy { return c.policy }

// Calculate never fails. An empty cart earns nothing.
func (c *Calculator) Calculate(finalAmount decimal.Decimal, totalQuantity int, productIDs []product.ID, now time.Time) Result {
	if totalQuantity <= 0 || len(productIDs) == 0 {
		return Result{Breakdown: []Entry{}}
	}

	base := floorPoints(finalAmount.Mul(c.policy.BaseRate))
	weekday := int64(0)
	if base > 0 && c.isBonusDay(now) {
		weekday = base
	}
	setKind, set := c.setBonus(productIDs)
	quantity := c.quantityBonus(totalQuantity)
	continuous := floorPoints(finalAmount.Mul(c.policy.ContinuousRate))

	entries := []Entry{
		{Kind: KindBase, Points: base},
		{Kind: KindWeekday, Points: weekday},
		{Kind: setKind, Points: set},
		{Kind: KindQuantity, Points: quantity},
		{Kind: KindContinuous, Points: continuous},
	}

	result := Result{Breakdown: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.Points <= 0 {
			continue
		}
		result.Points += e.Points
		result.Breakdown = append(result.Breakdown, e)
	}
	return result
}

func (c *Calculator) isBonusDay(now time.Time) bool {
	loc := c.policy.Location
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Weekday() == c.policy.BonusDay
}

func (c *Calculator) setBonus(productIDs []product.ID) (Kind, int64) {
	present := make(map[product.ID]struct{}, len(productIDs))
	for _, id := range productIDs {
		present[id] = struct{}{}
	}
	for _, rule := range c.policy.SetRules {
		if len(rule.Products) == 0 {
			continue
		}
		complete := true
		for _, id := range rule.Products {
			if _, ok := present[id]; !ok {
				complete = false
				break
			}
		}
		if complete {
			return rule.Kind, rule.Points
		}
	}
	return KindSet, 0
}

func (c *Calculator) quantityBonus(totalQuantity int) int64 {
	for _, tier := range c.policy.QuantityTiers {
		if totalQuantity >= tier.MinQuantity {
			return tier.Points
		}
	}
	return 0
}

func floorPoints(d decimal.Decimal) int64 {
	if d.IsNegative() {
		return 0
	}
	return d.Floor().IntPart()
}
