package reservations

import (
	"github.com/Bovice22/axequacks-app-sub000/internal/pricing"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
)

type BookingQuoteResponse struct {
	Quote      pricing.Quote                      `json:"quote"`
	Promotion  *promotions.ApplyPromotionResponse `json:"promotion,omitempty"`
	TotalCents int                                `json:"total_cents"`
}

type HoldResponse struct {
	HoldID     string `json:"hold_id"`
	DateKey    string `json:"date_key"`
	StartMin   int    `json:"start_min"`
	TotalCents int    `json:"total_cents"`
	ExpiresAt  string `json:"expires_at"`
}

func NewHoldResponse(hold *Hold) HoldResponse {
	return HoldResponse{
		HoldID:     hold.ID,
		DateKey:    hold.DateKey,
		StartMin:   hold.StartMin,
		TotalCents: hold.TotalCents,
		ExpiresAt:  hold.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
