package queries

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart.go -package=queriesmock

import (
	"context"

	"storefront-sim/internal/domain/product"
	"storefront-sim/internal/domain/promotion"
	"storefront-sim/internal/pkg/errs"
	"storefront-sim/internal/usecase"
	"storefront-sim/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCartNotFound = errs.ErrCartNotFound

type CartQueries interface {
	Summary(ctx context.Context, cartID uuid.UUID) (*usecase.CartSummary, error)
}

type CatalogQueries interface {
	Products(ctx context.Context) ([]ProductView, error)
	StockReport(ctx context.Context) (*StockReportView, error)
	Promotions(ctx context.Context) (promotion.State, error)
}

type cartQueriesImpl struct {
	carts      shared.CartRepository
	promotions shared.PromotionSource
	pricing    *usecase.PricingFacade
}

func NewCartQueries(carts shared.CartRepository, promotions shared.PromotionSource, pricing *usecase.PricingFacade) CartQueries {
	return &cartQueriesImpl{carts: carts, promotions: promotions, pricing: pricing}
}

func (q *cartQueriesImpl) Summary(ctx context.Context, cartID uuid.UUID) (*usecase.CartSummary, error) {
	ledger, err := q.carts.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return q.pricing.GetSummary(ledger.Lines(), q.promotions.State())
}

type catalogQueriesImpl struct {
	catalog    *product.Catalog
	promotions shared.PromotionSource
}

func NewCatalogQueries(catalog *product.Catalog, promotions shared.PromotionSource) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog, promotions: promotions}
}

func (q *catalogQueriesImpl) Products(_ context.Context) ([]ProductView, error) {
	state := q.promotions.State()
	snapshots := q.catalog.List()
	views := make([]ProductView, 0, len(snapshots))
	for _, s := range snapshots {
		views = append(views, ProductView{
			ID:            s.ID,
			Name:          s.Name,
			Category:      s.Category,
			Price:         state.DisplayPrice(s.ID, s.OriginalPrice),
			OriginalPrice: s.OriginalPrice,
			Stock:         s.Stock,
			StockStatus:   s.Status(),
			IsFlashSale:   state.IsFlashSale(s.ID),
			IsRecommended: state.IsRecommended(s.ID),
		})
	}
	return views, nil
}

func (q *catalogQueriesImpl) StockReport(_ context.Context) (*StockReportView, error) {
	report := q.catalog.Report()
	return &StockReportView{
		LowStock:   toNotices(report.LowStock),
		SoldOut:    toNotices(report.SoldOut),
		TotalStock: report.TotalStock,
	}, nil
}

func (q *catalogQueriesImpl) Promotions(_ context.Context) (promotion.State, error) {
	return q.promotions.State(), nil
}

func toNotices(in []product.Snapshot) []StockNotice {
	out := make([]StockNotice, 0, len(in))
	for _, s := range in {
		out = append(out, StockNotice{ID: s.ID, Name: s.Name, Stock: s.Stock, Status: s.Status()})
	}
	return out
}
