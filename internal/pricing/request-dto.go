package pricing

import (
	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
)

// QuoteRequest reuses the availability wire shapes so both surfaces accept
// the identical activity description.
type QuoteRequest struct {
	Kind      string                            `json:"kind" binding:"required,oneof=SINGLE COMBO"`
	Legs      []availability.LegRequest         `json:"legs" binding:"required,min=1,max=2,dive"`
	PartySize int                               `json:"party_size" binding:"required,gt=0"`
	PartyArea *availability.PartyAreaRequestDTO `json:"party_area,omitempty"`
}

func (r QuoteRequest) ToRequest() (availability.Request, error) {
	return availability.SearchRequest{
		Kind:      r.Kind,
		Legs:      r.Legs,
		PartySize: r.PartySize,
		PartyArea: r.PartyArea,
	}.ToRequest()
}
