//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"storefront-sim/internal/domain/discount"
	"storefront-sim/internal/domain/loyalty"
	"storefront-sim/internal/domain/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Reference SKUs of the default storefront catalog.
const (
	Keyboard   product.ID = "product1"
	Mouse      product.ID = "product2"
	MonitorArm product.ID = "product3"
	Pouch      product.ID = "product4"
	Speaker    product.ID = "product5"
)

type ProductFixture struct {
	ID             product.ID
	Name           string
	Price          int64
	Stock          int
	Category       string
	IndividualRate string
}

type CatalogBuilder struct {
	Fixtures []ProductFixture
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		Fixtures: []ProductFixture{
			{ID: Keyboard, Name: "버그 없애는 키보드", Price: 10000, Stock: 10, Category: "keyboard", IndividualRate: "0.10"},
			{ID: Mouse, Name: "생산성 폭발 마우스", Price: 20000, Stock: 15, Category: "mouse", IndividualRate: "0.15"},
			{ID: MonitorArm, Name: "거북목 탈출 모니터암", Price: 30000, Stock: 8, Category: "monitor", IndividualRate: "0.20"},
			{ID: Pouch, Name: "에러 방지 노트북 파우치", Price: 15000, Stock: 0, Category: "accessory", IndividualRate: "0.05"},
			{ID: Speaker, Name: "코딩할 때 듣는 Lo-Fi 스피커", Price: 25000, Stock: 3, Category: "audio", IndividualRate: "0.25"},
		},
	}
}

func (b *CatalogBuilder) With(mutate func(*CatalogBuilder)) *CatalogBuilder {
	mutate(b)
	return b
}

func (b *CatalogBuilder) WithStock(id product.ID, stock int) *CatalogBuilder {
	for i := range b.Fixtures {
		if b.Fixtures[i].ID == id {
			b.Fixtures[i].Stock = stock
		}
	}
	return b
}

func (b *CatalogBuilder) WithAllStock(stock int) *CatalogBuilder {
	for i := range b.Fixtures {
		b.Fixtures[i].Stock = stock
	}
	return b
}

func (b *CatalogBuilder) WithProduct(p ProductFixture) *CatalogBuilder {
	b.Fixtures = append(b.Fixtures, p)
	return b
}

func (b *CatalogBuilder) BuildDomain() (*product.Catalog, error) {
	seeds := make([]product.Seed, 0, len(b.Fixtures))
	for _, s := range b.Fixtures {
		p, err := product.NewProduct(string(s.ID), s.Name, decimal.NewFromInt(s.Price), s.Category)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, product.Seed{Product: p, Stock: s.Stock})
	}
	return product.NewCatalog(seeds)
}

func (b *CatalogBuilder) MustBuild(t *testing.T) *product.Catalog {
	t.Helper()
	c, err := b.BuildDomain()
	require.NoError(t, err)
	return c
}

func (b *CatalogBuilder) IndividualRates() map[product.ID]decimal.Decimal {
	rates := make(map[product.ID]decimal.Decimal, len(b.Fixtures))
	for _, s := range b.Fixtures {
		if s.IndividualRate != "" {
			rates[s.ID] = decimal.RequireFromString(s.IndividualRate)
		}
	}
	return rates
}

// DiscountPolicy is the default policy with this catalog's per-product rates, evaluated in loc.
func (b *CatalogBuilder) DiscountPolicy(loc *time.Location) discount.Policy {
	p := discount.DefaultPolicy().WithIndividualRates(b.IndividualRates())
	p.Location = loc
	return p
}

func LoyaltyPolicy(loc *time.Location) loyalty.Policy {
	p := loyalty.DefaultPolicy().WithSetProducts(Keyboard, Mouse, MonitorArm)
	p.Location = loc
	return p
}

// Fixed instants in UTC. 2024-01-01 is a Monday.
var (
	Monday  = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	Tuesday = time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
)
