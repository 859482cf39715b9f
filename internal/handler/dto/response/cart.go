package response

import (
	"storefront-sim/internal/usecase"

	"github.com/google/uuid"
)

type CreateCartResponse struct {
	CartID    string `json:"cartId"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type CartLineResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ItemTotal int64  `json:"itemTotal"`
}

type DiscountLineResponse struct {
	ProductID string  `json:"productId"`
	Rate      float64 `json:"rate"`
	Amount    int64   `json:"amount"`
	Source    string  `json:"source"`
}

type PointsEntryResponse struct {
	Kind   string `json:"kind"`
	Points int64  `json:"points"`
}

type CartSummaryResponse struct {
	CartID          string                 `json:"cartId"`
	Lines           []CartLineResponse     `json:"lines"`
	Subtotal        int64                  `json:"subtotal"`
	TotalQuantity   int                    `json:"totalQuantity"`
	DiscountLines   []DiscountLineResponse `json:"discountLines"`
	TotalDiscount   int64                  `json:"totalDiscount"`
	FinalAmount     int64                  `json:"finalAmount"`
	DiscountRate    float64                `json:"discountRate"`
	DiscountDay     bool                   `json:"discountDay"`
	LoyaltyPoints   int64                  `json:"loyaltyPoints"`
	PointsBreakdown []PointsEntryResponse  `json:"pointsBreakdown"`
}

func FromCartSummary(cartID uuid.UUID, s *usecase.CartSummary) (*CartSummaryResponse, error) {
	resp := &CartSummaryResponse{
		CartID:          cartID.String(),
		Lines:           make([]CartLineResponse, len(s.Lines)),
		Subtotal:        roundAmount(s.Subtotal),
		TotalQuantity:   s.TotalQuantity,
		DiscountLines:   make([]DiscountLineResponse, 0, len(s.DiscountLines)),
		TotalDiscount:   roundAmount(s.TotalDiscount),
		FinalAmount:     roundAmount(s.FinalAmount),
		DiscountRate:    ratePercent(s.DiscountRate),
		DiscountDay:     s.DiscountDay,
		LoyaltyPoints:   s.LoyaltyPoints,
		PointsBreakdown: make([]PointsEntryResponse, len(s.PointsBreakdown)),
	}
	for i := range s.Lines {
		if err := copyInto(&resp.Lines[i], &s.Lines[i]); err != nil {
			return nil, err
		}
	}
	for _, l := range s.DiscountLines {
		resp.DiscountLines = append(resp.DiscountLines, DiscountLineResponse{
			ProductID: l.ProductID.String(),
			Rate:      ratePercent(l.Rate),
			Amount:    roundAmount(l.Amount),
			Source:    l.Source.String(),
		})
	}
	for i := range s.PointsBreakdown {
		if err := copyInto(&resp.PointsBreakdown[i], &s.PointsBreakdown[i]); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
