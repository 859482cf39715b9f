package response

import (
	"storefront-sim/internal/domain/discount"
	"storefront-sim/internal/domain/loyalty"
	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var errUnexpectedType = errs.New("unexpected source type")

// Amounts are kept exact through pricing and rounded to whole currency units here.
func roundAmount(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// Rates are exposed as percentages with one decimal place.
func ratePercent(d decimal.Decimal) float64 {
	return d.Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
}

var converters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			d, ok := src.(decimal.Decimal)
			if !ok {
				return nil, errUnexpectedType
			}
			return roundAmount(d), nil
		},
	},
	{
		SrcType: product.ID(""),
		DstType: "",
		Fn: func(src any) (any, error) {
			id, ok := src.(product.ID)
			if !ok {
				return nil, errUnexpectedType
			}
			return id.String(), nil
		},
	},
	{
		SrcType: product.StockStatus(""),
		DstType: "",
		Fn: func(src any) (any, error) {
			s, ok := src.(product.StockStatus)
			if !ok {
				return nil, errUnexpectedType
			}
			return string(s), nil
		},
	},
	{
		SrcType: discount.SourceType(""),
		DstType: "",
		Fn: func(src any) (any, error) {
			s, ok := src.(discount.SourceType)
			if !ok {
				return nil, errUnexpectedType
			}
			return s.String(), nil
		},
	},
	{
		SrcType: loyalty.Kind(""),
		DstType: "",
		Fn: func(src any) (any, error) {
			k, ok := src.(loyalty.Kind)
			if !ok {
				return nil, errUnexpectedType
			}
			return string(k), nil
		},
	},
}

func copyInto(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{Converters: converters})
}
