package response

import (
	"storefront-sim/internal/domain/promotion"
	"storefront-sim/internal/usecase/queries"
)

type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice"`
	Stock         int    `json:"stock"`
	StockStatus   string `json:"stockStatus"`
	IsFlashSale   bool   `json:"isFlashSale"`
	IsRecommended bool   `json:"isRecommended"`
	IsCombo       bool   `json:"isCombo"`
}

type StockNoticeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
	Status string `json:"status"`
}

type StockReportResponse struct {
	LowStock   []StockNoticeResponse `json:"lowStock"`
	SoldOut    []StockNoticeResponse `json:"soldOut"`
	TotalStock int                   `json:"totalStock"`
}

type PromotionStateResponse struct {
	FlashSaleProductID      string `json:"flashSaleProductId,omitempty"`
	RecommendationProductID string `json:"recommendationProductId,omitempty"`
	LastSelectedProductID   string `json:"lastSelectedProductId,omitempty"`
	ComboProductID          string `json:"comboProductId,omitempty"`
}

func FromProductViews(views []queries.ProductView) ([]ProductResponse, error) {
	out := make([]ProductResponse, len(views))
	for i := range views {
		if err := copyInto(&out[i], &views[i]); err != nil {
			return nil, err
		}
		out[i].IsCombo = views[i].IsCombo()
	}
	return out, nil
}

func FromStockReport(v *queries.StockReportView) (*StockReportResponse, error) {
	resp := &StockReportResponse{
		LowStock:   make([]StockNoticeResponse, len(v.LowStock)),
		SoldOut:    make([]StockNoticeResponse, len(v.SoldOut)),
		TotalStock: v.TotalStock,
	}
	for i := range v.LowStock {
		if err := copyInto(&resp.LowStock[i], &v.LowStock[i]); err != nil {
			return nil, err
		}
	}
	for i := range v.SoldOut {
		if err := copyInto(&resp.SoldOut[i], &v.SoldOut[i]); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func FromPromotionState(s promotion.State) *PromotionStateResponse {
	resp := &PromotionStateResponse{
		FlashSaleProductID:      s.FlashSaleProductID.String(),
		RecommendationProductID: s.RecommendationProductID.String(),
		LastSelectedProductID:   s.LastSelectedProductID.String(),
	}
	if id, ok := s.ComboProductID(); ok {
		resp.ComboProductID = id.String()
	}
	return resp
}
