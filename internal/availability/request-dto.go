package availability

import (
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

type LegRequest struct {
	Type    string `json:"type" binding:"required,oneof=AXE_BAY DUCKPIN_LANE PARTY_AREA"`
	Minutes int    `json:"minutes" binding:"required,gt=0"`
}

type PartyAreaRequestDTO struct {
	Count   int `json:"count" binding:"omitempty,gte=1"`
	Minutes int `json:"minutes" binding:"required,gt=0"`
}

// SearchRequest is the wire form of one availability lookup. The display
// strings resolve into the tagged activity variant exactly once, here.
type SearchRequest struct {
	DateKey   string               `json:"date_key" binding:"required"`
	Kind      string               `json:"kind" binding:"required,oneof=SINGLE COMBO"`
	Legs      []LegRequest         `json:"legs" binding:"required,min=1,max=2,dive"`
	PartySize int                  `json:"party_size" binding:"required,gt=0"`
	PartyArea *PartyAreaRequestDTO `json:"party_area,omitempty"`
}

// ToRequest resolves the wire form into the engine's tagged variant.
func (r SearchRequest) ToRequest() (Request, error) {
	legs := make([]Leg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, Leg{Type: catalog.ResourceType(leg.Type), Minutes: leg.Minutes})
	}

	activity := Activity{Kind: Kind(r.Kind), Legs: legs}
	if err := activity.Validate(); err != nil {
		return Request{}, err
	}

	req := Request{
		Activity:  activity,
		PartySize: r.PartySize,
	}
	if r.PartyArea != nil {
		count := r.PartyArea.Count
		if count == 0 {
			count = 1
		}
		req.PartyArea = &PartyAreaRequest{Count: count, Minutes: r.PartyArea.Minutes}
	}

	return req, nil
}

type NeedsRequest struct {
	Kind      string       `json:"kind" binding:"required,oneof=SINGLE COMBO"`
	Legs      []LegRequest `json:"legs" binding:"required,min=1,max=2,dive"`
	PartySize int          `json:"party_size" binding:"required,gt=0"`
}

func (r NeedsRequest) ToActivity() (Activity, error) {
	legs := make([]Leg, 0, len(r.Legs))
	for _, leg := range r.Legs {
		legs = append(legs, Leg{Type: catalog.ResourceType(leg.Type), Minutes: leg.Minutes})
	}

	activity := Activity{Kind: Kind(r.Kind), Legs: legs}
	if err := activity.Validate(); err != nil {
		return Activity{}, err
	}
	return activity, nil
}
