package reservations

import (
	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
)

type QuoteBookingRequest struct {
	Kind          string                            `json:"kind" binding:"required,oneof=SINGLE COMBO"`
	Legs          []availability.LegRequest         `json:"legs" binding:"required,min=1,max=2,dive"`
	PartySize     int                               `json:"party_size" binding:"required,gt=0"`
	PartyArea     *availability.PartyAreaRequestDTO `json:"party_area,omitempty"`
	PromotionCode string                            `json:"promotion_code,omitempty"`
}

func (r QuoteBookingRequest) ToRequest() (availability.Request, error) {
	return availability.SearchRequest{
		Kind:      r.Kind,
		Legs:      r.Legs,
		PartySize: r.PartySize,
		PartyArea: r.PartyArea,
	}.ToRequest()
}

type CreateHoldRequest struct {
	DateKey    string                            `json:"date_key" binding:"required"`
	StartMin   int                               `json:"start_min" binding:"gte=0"`
	Kind       string                            `json:"kind" binding:"required,oneof=SINGLE COMBO"`
	Legs       []availability.LegRequest         `json:"legs" binding:"required,min=1,max=2,dive"`
	PartySize  int                               `json:"party_size" binding:"required,gt=0"`
	PartyArea  *availability.PartyAreaRequestDTO `json:"party_area,omitempty"`
	GuestEmail string                            `json:"guest_email" binding:"required,email"`
}

func (r CreateHoldRequest) ToRequest() (availability.Request, error) {
	return availability.SearchRequest{
		Kind:      r.Kind,
		Legs:      r.Legs,
		PartySize: r.PartySize,
		PartyArea: r.PartyArea,
	}.ToRequest()
}

type ConfirmBookingRequest struct {
	HoldID        string `json:"hold_id" binding:"required,uuid"`
	GuestName     string `json:"guest_name" binding:"required,min=2,max=120"`
	GuestEmail    string `json:"guest_email" binding:"required,email"`
	PromotionCode string `json:"promotion_code,omitempty"`
}
