package pricing

import (
	"fmt"
	"math"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

// RateCard prices one resource type per unit. Standard durations carry an
// exact tier price; anything else falls back to the pro-rated hourly path.
// The two paths must agree wherever a tier is defined, so a 90-minute quote
// lands between the 60 and 120 tiers with no discontinuity.
type RateCard struct {
	TierCents   map[int]int // minutes -> cents per unit
	HourlyCents int         // cents per unit per hour
}

// PerUnitCents resolves the per-unit charge for a duration: the exact tier
// when one is defined, else round(hourly * hours).
func (r RateCard) PerUnitCents(minutes int) int {
	if cents, ok := r.TierCents[minutes]; ok {
		return cents
	}
	return Prorate(r.HourlyCents, minutes)
}

// Prorate computes round(hourlyCents * minutes / 60) with half-up rounding.
func Prorate(hourlyCents, minutes int) int {
	return int(math.Round(float64(hourlyCents) * float64(minutes) / 60.0))
}

// Validate rejects a card whose tiers disagree with the pro-rated path.
func (r RateCard) Validate() error {
	if r.HourlyCents <= 0 {
		return fmt.Errorf("hourly rate must be positive, got %d", r.HourlyCents)
	}
	for minutes, cents := range r.TierCents {
		if prorated := Prorate(r.HourlyCents, minutes); cents != prorated {
			return fmt.Errorf("tier %dmin is %d cents but pro-rated path yields %d", minutes, cents, prorated)
		}
	}
	return nil
}

// RateBook is the full venue rate configuration: one card per activity
// resource type plus the party-area add-on rate. Process-wide and read-only
// after startup, like the rest of the catalog configuration.
type RateBook struct {
	Cards             map[catalog.ResourceType]RateCard
	PartyAreaHourly   int // cents per area per hour
	PartyAreaMaxMin   int // longest add-on hold accepted
	PartyAreaStepMin  int // add-on durations must be whole multiples of this
	PartyAreaFloorMin int // shortest add-on hold accepted
}

// CardFor returns the rate card for a resource type.
func (b RateBook) CardFor(resourceType catalog.ResourceType) (RateCard, error) {
	card, ok := b.Cards[resourceType]
	if !ok {
		return RateCard{}, fmt.Errorf("%w: %s", ErrUnsupportedActivity, resourceType)
	}
	return card, nil
}

// Validate checks every card plus the add-on configuration.
func (b RateBook) Validate() error {
	for resourceType, card := range b.Cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("rate card %s: %w", resourceType, err)
		}
	}
	if b.PartyAreaHourly <= 0 {
		return fmt.Errorf("party area hourly rate must be positive, got %d", b.PartyAreaHourly)
	}
	return nil
}

// DefaultRateBook is the venue's standing price list, cents per unit.
func DefaultRateBook(partyAreaMaxMinutes int) RateBook {
	return RateBook{
		Cards: map[catalog.ResourceType]RateCard{
			catalog.TypeAxeBay: {
				TierCents:   map[int]int{15: 900, 30: 1800, 60: 3600, 120: 7200},
				HourlyCents: 3600,
			},
			catalog.TypeDuckpinLane: {
				TierCents:   map[int]int{30: 1500, 60: 3000, 120: 6000},
				HourlyCents: 3000,
			},
		},
		PartyAreaHourly:   7500,
		PartyAreaMaxMin:   partyAreaMaxMinutes,
		PartyAreaStepMin:  60,
		PartyAreaFloorMin: 60,
	}
}
