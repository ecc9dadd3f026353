package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

func TestProrateRounding(t *testing.T) {
	assert.Equal(t, 3600, Prorate(3600, 60))
	assert.Equal(t, 5400, Prorate(3600, 90))
	assert.Equal(t, 900, Prorate(3600, 15))

	// 2500/hr for 50 minutes is 2083.33, rounded to 2083
	assert.Equal(t, 2083, Prorate(2500, 50))
	// 2500/hr for 45 minutes is 1875 exactly
	assert.Equal(t, 1875, Prorate(2500, 45))
}

func TestPerUnitCentsPrefersTier(t *testing.T) {
	card := RateCard{
		TierCents:   map[int]int{60: 3600, 120: 7200},
		HourlyCents: 3600,
	}

	assert.Equal(t, 3600, card.PerUnitCents(60))
	assert.Equal(t, 7200, card.PerUnitCents(120))

	// Off-tier falls through to the pro-rated path
	assert.Equal(t, 5400, card.PerUnitCents(90))
	assert.Equal(t, 2700, card.PerUnitCents(45))
}

func TestTierContinuity(t *testing.T) {
	card := RateCard{
		TierCents:   map[int]int{60: 3600, 120: 7200},
		HourlyCents: 3600,
	}

	// An off-tier duration between two tiers must price between them
	lower := card.PerUnitCents(60)
	mid := card.PerUnitCents(90)
	upper := card.PerUnitCents(120)
	assert.Greater(t, mid, lower)
	assert.Less(t, mid, upper)

	// Approaching a tier boundary from either side stays continuous
	assert.Equal(t, card.PerUnitCents(60), Prorate(card.HourlyCents, 60))
	assert.Equal(t, card.PerUnitCents(120), Prorate(card.HourlyCents, 120))
}

func TestRateCardValidateCatchesDiscontinuity(t *testing.T) {
	good := RateCard{
		TierCents:   map[int]int{60: 3000, 120: 6000},
		HourlyCents: 3000,
	}
	assert.NoError(t, good.Validate())

	// A discounted 120 tier disagrees with the pro-rated path
	bad := RateCard{
		TierCents:   map[int]int{60: 3000, 120: 5000},
		HourlyCents: 3000,
	}
	assert.Error(t, bad.Validate())

	noHourly := RateCard{TierCents: map[int]int{60: 3000}}
	assert.Error(t, noHourly.Validate())
}

func TestDefaultRateBookValid(t *testing.T) {
	book := DefaultRateBook(480)
	assert.NoError(t, book.Validate())

	_, err := book.CardFor(catalog.TypeAxeBay)
	assert.NoError(t, err)
	_, err = book.CardFor(catalog.TypeDuckpinLane)
	assert.NoError(t, err)

	// Party areas price through the add-on path, never a rate card
	_, err = book.CardFor(catalog.TypePartyArea)
	assert.ErrorIs(t, err, ErrUnsupportedActivity)
}
