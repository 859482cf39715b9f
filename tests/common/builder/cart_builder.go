//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/domain/product"
	reqdto "storefront-sim/internal/handler/dto/request"
	"storefront-sim/internal/usecase"
	"storefront-sim/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type CartBuilder struct {
	ID      uuid.UUID
	Catalog *product.Catalog
	Adds    []cart.Line
	Now     time.Time
}

func NewCartBuilder(catalog *product.Catalog) *CartBuilder {
	return &CartBuilder{
		ID:      uuid.New(),
		Catalog: catalog,
		Now:     Monday,
	}
}

func (b *CartBuilder) WithLine(id product.ID, qty int) *CartBuilder {
	b.Adds = append(b.Adds, cart.Line{ProductID: id, Quantity: qty})
	return b
}

// MustBuild applies every add in order, failing the test on the first rejection.
func (b *CartBuilder) MustBuild(t *testing.T) *cart.Ledger {
	t.Helper()
	now := b.Now
	ledger := cart.NewLedger(b.ID, b.Catalog, func() time.Time { return now })
	for _, l := range b.Adds {
		require.NoError(t, ledger.AddLine(l.ProductID, l.Quantity))
	}
	return ledger
}

func NewAddLineRequest(id product.ID, qty int) reqdto.AddLineRequest {
	return reqdto.AddLineRequest{ProductID: id.String(), Quantity: &qty}
}

// SampleSummary is a single keyboard priced at 10000 with no discounts.
func SampleSummary() *usecase.CartSummary {
	price := decimal.NewFromInt(10000)
	return &usecase.CartSummary{
		Lines: []usecase.SummaryLine{
			{ProductID: Keyboard, Name: "버그 없애는 키보드", UnitPrice: price, Quantity: 1, ItemTotal: price},
		},
		Subtotal:      price,
		TotalQuantity: 1,
		TotalDiscount: decimal.Zero,
		FinalAmount:   price,
		DiscountRate:  decimal.Zero,
		LoyaltyPoints: 60,
	}
}

func SampleProductViews() []queries.ProductView {
	return []queries.ProductView{
		{
			ID:            Keyboard,
			Name:          "버그 없애는 키보드",
			Category:      "keyboard",
			Price:         decimal.NewFromInt(8000),
			OriginalPrice: decimal.NewFromInt(10000),
			Stock:         10,
			StockStatus:   product.StockAvailable,
			IsFlashSale:   true,
		},
		{
			ID:            Pouch,
			Name:          "에러 방지 노트북 파우치",
			Category:      "accessory",
			Price:         decimal.NewFromInt(15000),
			OriginalPrice: decimal.NewFromInt(15000),
			Stock:         0,
			StockStatus:   product.StockSoldOut,
		},
	}
}
