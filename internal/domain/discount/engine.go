package discount

import (
	"time"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"

	"github.com/shopspring/decimal"
)

// Engine resolves per-line discounts from six independent sources. It holds
// no mutable state and never fails.
type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() Policy { return e.policy }

func (e *Engine) Resolve(items []Item, state promotion.State, now time.Time) Result {
	subtotal := decimal.Zero
	totalQty := 0
	for _, it := range items {
		subtotal = subtotal.Add(it.Total())
		totalQty += it.Quantity
	}

	bulkActive := totalQty >= e.policy.BulkThreshold
	comboID, hasCombo := state.ComboProductID()

	var sets [][]Line
	if !bulkActive {
		sets = append(sets, e.individual(items))
	}
	sets = append(sets,
		e.bulk(items, bulkActive),
		e.weekday(items, now),
		e.flashSale(items, state, comboID, hasCombo),
		e.recommendation(items, state, comboID, hasCombo),
		e.combo(items, comboID, hasCombo),
	)

	best := merge(sets)

	result := Result{
		Lines:         make([]Line, 0, len(items)),
		Subtotal:      subtotal,
		TotalDiscount: decimal.Zero,
	}
	for _, it := range items {
		line, ok := best[it.ProductID]
		if !ok {
			continue
		}
		result.Lines = append(result.Lines, line)
		result.TotalDiscount = result.TotalDiscount.Add(line.Amount)
	}
	result.FinalAmount = subtotal.Sub(result.TotalDiscount)
	result.Rate = decimal.Zero
	if subtotal.IsPositive() {
		result.Rate = decimal.NewFromInt(1).Sub(result.FinalAmount.Div(subtotal))
	}
	return result
}

// merge keeps the highest rate per product. Sets are folded in order and a
// later line must be strictly greater to replace, so ties go to the earlier source.
func merge(sets [][]Line) map[product.ID]Line {
	best := make(map[product.ID]Line)
	for _, set := range sets {
		for _, l := range set {
			cur, ok := best[l.ProductID]
			if !ok || l.Rate.GreaterThan(cur.Rate) {
				best[l.ProductID] = l
			}
		}
	}
	return best
}

func (e *Engine) individual(items []Item) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		rate := decimal.Zero
		if it.Quantity >= e.policy.IndividualThreshold {
			rate = e.policy.individualRate(it.ProductID)
		}
		out = append(out, newLine(it, rate, SourceIndividual))
	}
	return out
}

func (e *Engine) bulk(items []Item, active bool) []Line {
	if !active {
		return nil
	}
	return uniform(items, e.policy.BulkRate, SourceBulk)
}

func (e *Engine) weekday(items []Item, now time.Time) []Line {
	if !e.policy.IsDiscountDay(now) {
		return nil
	}
	return uniform(items, e.policy.WeekdayRate, SourceWeekday)
}

func (e *Engine) flashSale(items []Item, state promotion.State, comboID product.ID, hasCombo bool) []Line {
	var out []Line
	for _, it := range items {
		if hasCombo && it.ProductID == comboID {
			continue
		}
		if state.IsFlashSale(it.ProductID) {
			out = append(out, newLine(it, e.policy.FlashSaleRate, SourceFlashSale))
		}
	}
	return out
}

func (e *Engine) recommendation(items []Item, state promotion.State, comboID product.ID, hasCombo bool) []Line {
	var out []Line
	for _, it := range items {
		if hasCombo && it.ProductID == comboID {
			continue
		}
		if state.IsRecommended(it.ProductID) {
			out = append(out, newLine(it, e.policy.RecommendationRate, SourceRecommendation))
		}
	}
	return out
}

func (e *Engine) combo(items []Item, comboID product.ID, hasCombo bool) []Line {
	if !hasCombo {
		return nil
	}
	for _, it := range items {
		if it.ProductID == comboID {
			return []Line{newLine(it, e.policy.ComboRate, SourceCombo)}
		}
	}
	return nil
}

func uniform(items []Item, rate decimal.Decimal, source SourceType) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		out = append(out, newLine(it, rate, source))
	}
	return out
}

func newLine(it Item, rate decimal.Decimal, source SourceType) Line {
	return Line{
		ProductID: it.ProductID,
		Rate:      rate,
		Amount:    it.Total().Mul(rate),
		Source:    source,
	}
}
