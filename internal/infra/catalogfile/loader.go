// Package catalogfile reads the product catalog and its pricing tables from YAML.
package catalogfile

import (
	_ "embed"
	"os"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type productEntry struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Price            string `yaml:"price"`
	Stock            int    `yaml:"stock"`
	Category         string `yaml:"category"`
	BulkDiscountRate string `yaml:"bulk_discount_rate"`
}

type setEntry struct {
	Keyboard   string `yaml:"keyboard"`
	Mouse      string `yaml:"mouse"`
	MonitorArm string `yaml:"monitor_arm"`
}

type document struct {
	Products []productEntry `yaml:"products"`
	Loyalty  struct {
		Set setEntry `yaml:"set"`
	} `yaml:"loyalty"`
}

// SetProducts names the products that make up the loyalty bundle.
type SetProducts struct {
	Keyboard   product.ID
	Mouse      product.ID
	MonitorArm product.ID
}

// Definition is a parsed catalog file.
type Definition struct {
	Seeds           []product.Seed
	IndividualRates map[product.ID]decimal.Decimal
	SetProducts     SetProducts
}

func (d *Definition) NewCatalog() (*product.Catalog, error) {
	return product.NewCatalog(d.Seeds)
}

// Load reads path, or the embedded default catalog when path is empty.
func Load(path string) (*Definition, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read catalog file %s", path)
	}
	return Parse(raw)
}

func Default() (*Definition, error) {
	return Parse(defaultCatalog)
}

func Parse(raw []byte) (*Definition, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode catalog yaml"), errs.ErrCatalogInvalid)
	}
	if len(doc.Products) == 0 {
		return nil, errs.Wrap(errs.ErrCatalogInvalid, "catalog has no products")
	}

	def := &Definition{
		Seeds:           make([]product.Seed, 0, len(doc.Products)),
		IndividualRates: make(map[product.ID]decimal.Decimal, len(doc.Products)),
		SetProducts: SetProducts{
			Keyboard:   product.ID(doc.Loyalty.Set.Keyboard),
			Mouse:      product.ID(doc.Loyalty.Set.Mouse),
			MonitorArm: product.ID(doc.Loyalty.Set.MonitorArm),
		},
	}

	for _, e := range doc.Products {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "price of %s", e.ID), errs.ErrCatalogInvalid)
		}
		p, err := product.NewProduct(e.ID, e.Name, price, e.Category)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrCatalogInvalid)
		}
		if e.Stock < 0 {
			return nil, errs.Wrapf(errs.ErrCatalogInvalid, "stock of %s is negative", e.ID)
		}
		def.Seeds = append(def.Seeds, product.Seed{Product: p, Stock: e.Stock})

		if e.BulkDiscountRate == "" {
			continue
		}
		rate, err := decimal.NewFromString(e.BulkDiscountRate)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "bulk discount rate of %s", e.ID), errs.ErrCatalogInvalid)
		}
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, errs.Wrapf(errs.ErrCatalogInvalid, "bulk discount rate of %s out of range", e.ID)
		}
		def.IndividualRates[p.ID()] = rate
	}

	return def, nil
}
