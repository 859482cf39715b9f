//go:build unit

package catalogfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/infra/catalogfile"
	"storefront-sim/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	def, err := catalogfile.Default()
	require.NoError(t, err)

	require.Len(t, def.Seeds, 5)
	assert.Equal(t, product.ID("product1"), def.Seeds[0].Product.ID())
	assert.True(t, decimal.NewFromInt(10000).Equal(def.Seeds[0].Product.OriginalPrice()))
	assert.Equal(t, 10, def.Seeds[0].Stock)
	assert.Equal(t, 0, def.Seeds[3].Stock)
	assert.True(t, decimal.RequireFromString("0.25").Equal(def.IndividualRates["product5"]))
	assert.Equal(t, catalogfile.SetProducts{
		Keyboard:   "product1",
		Mouse:      "product2",
		MonitorArm: "product3",
	}, def.SetProducts)

	catalog, err := def.NewCatalog()
	require.NoError(t, err)
	assert.Equal(t, 36, catalog.TotalStock())
}

func TestLoad(t *testing.T) {
	t.Run("empty path falls back to the embedded catalog", func(t *testing.T) {
		def, err := catalogfile.Load("")
		require.NoError(t, err)
		assert.Len(t, def.Seeds, 5)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		raw := []byte(`
products:
  - id: a
    name: Alpha
    price: "1200"
    stock: 4
`)
		require.NoError(t, os.WriteFile(path, raw, 0o600))

		def, err := catalogfile.Load(path)
		require.NoError(t, err)
		require.Len(t, def.Seeds, 1)
		assert.Empty(t, def.IndividualRates)
		assert.True(t, def.SetProducts.Keyboard.IsZero())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := catalogfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseInvalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "malformed yaml", raw: "products: ["},
		{name: "no products", raw: "products: []"},
		{name: "bad price", raw: "products:\n  - {id: a, name: A, price: cheap, stock: 1}"},
		{name: "zero price", raw: "products:\n  - {id: a, name: A, price: \"0\", stock: 1}"},
		{name: "missing name", raw: "products:\n  - {id: a, price: \"10\", stock: 1}"},
		{name: "negative stock", raw: "products:\n  - {id: a, name: A, price: \"10\", stock: -1}"},
		{name: "rate above one", raw: "products:\n  - {id: a, name: A, price: \"10\", stock: 1, bulk_discount_rate: \"1.5\"}"},
		{name: "unparsable rate", raw: "products:\n  - {id: a, name: A, price: \"10\", stock: 1, bulk_discount_rate: lots}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := catalogfile.Parse([]byte(tc.raw))
			require.Nil(t, def)
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrCatalogInvalid), "got %v", err)
		})
	}
}
