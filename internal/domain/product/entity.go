package product

import (
	"strings"

	"storefront-sim/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductID    = errs.New("product id must not be empty")
	ErrInvalidProductName  = errs.New("product name must not be empty")
	ErrInvalidProductPrice = errs.New("product price must be positive")
)

type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

// Product is immutable once built. Stock lives on the Catalog.
type Product struct {
	id            ID
	name          string
	originalPrice decimal.Decimal
	category      string
}

func NewProduct(id, name string, originalPrice decimal.Decimal, category string) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidProductID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidProductName
	}
	if !originalPrice.IsPositive() {
		return nil, errs.Wrapf(ErrInvalidProductPrice, "product %s", id)
	}

	return &Product{
		id:            ID(id),
		name:          name,
		originalPrice: originalPrice,
		category:      strings.TrimSpace(category),
	}, nil
}

func (p *Product) ID() ID                         { return p.id }
func (p *Product) Name() string                   { return p.name }
func (p *Product) OriginalPrice() decimal.Decimal { return p.originalPrice }
func (p *Product) Category() string               { return p.category }
