//go:build unit

package loyalty_test

import (
	"testing"
	"time"

	"storefront-sim/internal/domain/loyalty"
	"storefront-sim/internal/domain/product"
	"storefront-sim/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	calc := loyalty.NewCalculator(builder.LoyaltyPolicy(time.UTC))

	cases := []struct {
		name  string
		final int64
		qty   int
		ids   []product.ID
		now   time.Time
		want  []loyalty.Entry
		total int64
	}{
		{
			name:  "single keyboard",
			final: 10000,
			qty:   1,
			ids:   []product.ID{builder.Keyboard},
			now:   builder.Monday,
			want: []loyalty.Entry{
				{Kind: loyalty.KindBase, Points: 10},
				{Kind: loyalty.KindContinuous, Points: 50},
			},
			total: 60,
		},
		{
			name:  "bonus day doubles base",
			final: 10000,
			qty:   1,
			ids:   []product.ID{builder.Keyboard},
			now:   builder.Tuesday,
			want: []loyalty.Entry{
				{Kind: loyalty.KindBase, Points: 10},
				{Kind: loyalty.KindWeekday, Points: 10},
				{Kind: loyalty.KindContinuous, Points: 50},
			},
			total: 70,
		},
		{
			name:  "keyboard and mouse set",
			final: 30000,
			qty:   2,
			ids:   []product.ID{builder.Keyboard, builder.Mouse},
			now:   builder.Monday,
			want: []loyalty.Entry{
				{Kind: loyalty.KindBase, Points: 30},
				{Kind: loyalty.KindSet, Points: 50},
				{Kind: loyalty.KindContinuous, Points: 150},
			},
			total: 230,
		},
		{
			name:  "full set replaces the pair bonus",
			final: 60000,
			qty:   3,
			ids:   []product.ID{builder.MonitorArm, builder.Mouse, builder.Keyboard},
			now:   builder.Monday,
			want: []loyalty.Entry{
				{Kind: loyalty.KindBase, Points: 60},
				{Kind: loyalty.KindFullSet, Points: 100},
				{Kind: loyalty.KindContinuous, Points: 300},
			},
			total: 460,
		},
		{
			name:  "fractional points are floored",
			final: 1999,
			qty:   1,
			ids:   []product.ID{builder.Keyboard},
			now:   builder.Monday,
			want: []loyalty.Entry{
				{Kind: loyalty.KindBase, Points: 1},
				{Kind: loyalty.KindContinuous, Points: 9},
			},
			total: 10,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := calc.Calculate(decimal.NewFromInt(tc.final), tc.qty, tc.ids, tc.now)

			assert.Equal(t, tc.want, result.Breakdown)
			assert.Equal(t, tc.total, result.Points)
		})
	}
}

func TestQuantityTiers(t *testing.T) {
	calc := loyalty.NewCalculator(builder.LoyaltyPolicy(time.UTC))

	tiers := []struct {
		qty  int
		want int64
	}{
		{9, 0},
		{10, 20},
		{19, 20},
		{20, 50},
		{29, 50},
		{30, 100},
		{120, 100},
	}
	for _, tc := range tiers {
		result := calc.Calculate(decimal.NewFromInt(1000), tc.qty, []product.ID{builder.Speaker}, builder.Monday)

		got := int64(0)
		for _, e := range result.Breakdown {
			if e.Kind == loyalty.KindQuantity {
				got = e.Points
			}
		}
		assert.Equal(t, tc.want, got, "quantity %d", tc.qty)
	}
}

func TestCalculateEmptyCart(t *testing.T) {
	calc := loyalty.NewCalculator(builder.LoyaltyPolicy(time.UTC))

	result := calc.Calculate(decimal.Zero, 0, nil, builder.Tuesday)

	assert.Equal(t, int64(0), result.Points)
	require.NotNil(t, result.Breakdown)
	assert.Empty(t, result.Breakdown)
}

func TestCalculateWithoutSetRules(t *testing.T) {
	calc := loyalty.NewCalculator(loyalty.DefaultPolicy())

	result := calc.Calculate(decimal.NewFromInt(30000), 2, []product.ID{builder.Keyboard, builder.Mouse}, builder.Monday)

	assert.Equal(t, int64(180), result.Points)
	for _, e := range result.Breakdown {
		assert.NotEqual(t, loyalty.KindSet, e.Kind)
	}
}
