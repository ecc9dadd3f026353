package pricing

import (
	"context"
	"fmt"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

// LineItem is one display row of a price breakdown.
type LineItem struct {
	Label string `json:"label"`
	Cents int    `json:"cents"`
}

// Quote is a deterministic price: an integer total in minor currency units
// plus the ordered breakdown it sums from. Promotional adjustment happens
// downstream, never here.
type Quote struct {
	TotalCents int        `json:"total_cents"`
	Breakdown  []LineItem `json:"breakdown"`
}

// UnitCalculator resolves required unit counts per resource type. Satisfied
// by the availability service.
type UnitCalculator interface {
	ComputeNeeds(ctx context.Context, activity availability.Activity, partySize int) (map[catalog.ResourceType]int, error)
}

// CapacityReader answers unit counts for one resource type. Satisfied by the
// catalog service.
type CapacityReader interface {
	CapacityOf(ctx context.Context, resourceType catalog.ResourceType) (int, error)
}

type Service interface {
	// ComputePrice quotes a request: each activity leg priced independently
	// at its own duration and unit count, the party-area add-on as a
	// separate line item.
	ComputePrice(ctx context.Context, req availability.Request) (*Quote, error)

	// RateBook exposes the standing price list for display surfaces.
	RateBook() RateBook
}

type service struct {
	rates   RateBook
	needs   UnitCalculator
	catalog CapacityReader
}

// NewService wires the price list against the unit calculator. The rate book
// is validated once here; a card whose tiers disagree with the pro-rated
// path is a configuration bug, not a per-request condition.
func NewService(rates RateBook, needsService UnitCalculator, catalogService CapacityReader) (Service, error) {
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate book: %w", err)
	}
	return &service{rates: rates, needs: needsService, catalog: catalogService}, nil
}

func (s *service) RateBook() RateBook {
	return s.rates
}

func (s *service) ComputePrice(ctx context.Context, req availability.Request) (*Quote, error) {
	if err := req.Activity.Validate(); err != nil {
		return nil, err
	}

	needs, err := s.needs.ComputeNeeds(ctx, req.Activity, req.PartySize)
	if err != nil {
		return nil, err
	}

	quote := &Quote{}
	for _, leg := range req.Activity.Legs {
		card, err := s.rates.CardFor(leg.Type)
		if err != nil {
			return nil, err
		}

		units := needs[leg.Type]
		cents := units * card.PerUnitCents(leg.Minutes)
		quote.Breakdown = append(quote.Breakdown, LineItem{
			Label: fmt.Sprintf("%s %d min x %d units", leg.Type, leg.Minutes, units),
			Cents: cents,
		})
		quote.TotalCents += cents
	}

	if req.PartyArea != nil {
		item, err := s.priceAddOn(ctx, req)
		if err != nil {
			return nil, err
		}
		quote.Breakdown = append(quote.Breakdown, *item)
		quote.TotalCents += item.Cents
	}

	return quote, nil
}

// priceAddOn charges the party area hold: count x hourly x hours. The
// duration must be whole hours, at least one, within the configured ceiling,
// and no longer than the primary visit it rides along with.
func (s *service) priceAddOn(ctx context.Context, req availability.Request) (*LineItem, error) {
	minutes := req.PartyArea.Minutes

	if minutes < s.rates.PartyAreaFloorMin {
		return nil, fmt.Errorf("%w: %d minutes is below the %d minute minimum", ErrInvalidAddOnDuration, minutes, s.rates.PartyAreaFloorMin)
	}
	if minutes%s.rates.PartyAreaStepMin != 0 {
		return nil, fmt.Errorf("%w: %d minutes is not a whole multiple of %d", ErrInvalidAddOnDuration, minutes, s.rates.PartyAreaStepMin)
	}
	if minutes > s.rates.PartyAreaMaxMin {
		return nil, fmt.Errorf("%w: %d minutes exceeds the %d minute maximum", ErrInvalidAddOnDuration, minutes, s.rates.PartyAreaMaxMin)
	}
	if primary := req.Activity.TotalMinutes(); minutes > primary {
		return nil, fmt.Errorf("%w: %d minutes exceeds the %d minute visit", ErrInvalidAddOnDuration, minutes, primary)
	}

	capacity, err := s.catalog.CapacityOf(ctx, catalog.TypePartyArea)
	if err != nil {
		return nil, err
	}
	count := req.PartyArea.Count
	if count < 1 {
		count = 1
	}
	if count > capacity {
		count = capacity
	}

	hours := minutes / 60
	cents := count * s.rates.PartyAreaHourly * hours
	return &LineItem{
		Label: fmt.Sprintf("%s %d hr x %d areas", catalog.TypePartyArea, hours, count),
		Cents: cents,
	}, nil
}
