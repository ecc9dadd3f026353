package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

type stubUnits struct {
	topo availability.Topology
}

func (s stubUnits) ComputeNeeds(_ context.Context, activity availability.Activity, partySize int) (map[catalog.ResourceType]int, error) {
	return s.topo.Needs(activity, partySize)
}

type stubCapacity struct {
	counts map[catalog.ResourceType]int
}

func (s stubCapacity) CapacityOf(_ context.Context, resourceType catalog.ResourceType) (int, error) {
	capacity, ok := s.counts[resourceType]
	if !ok {
		return 0, catalog.ErrUnknownResourceType
	}
	return capacity, nil
}

func newTestService(t *testing.T) Service {
	t.Helper()

	topo := availability.Topology{
		Capacity: map[catalog.ResourceType]int{
			catalog.TypeAxeBay:      4,
			catalog.TypeDuckpinLane: 6,
			catalog.TypePartyArea:   2,
		},
		GuestsPerUnit: map[catalog.ResourceType]int{
			catalog.TypeAxeBay:      4,
			catalog.TypeDuckpinLane: 6,
		},
	}

	svc, err := NewService(DefaultRateBook(480), stubUnits{topo: topo}, stubCapacity{counts: topo.Capacity})
	require.NoError(t, err)
	return svc
}

func TestComputePriceSingle(t *testing.T) {
	svc := newTestService(t)

	// Party of 10 needs 3 bays; 60 min tier is 3600/unit
	quote, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypeAxeBay, 60),
		PartySize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 3*3600, quote.TotalCents)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, 3*3600, quote.Breakdown[0].Cents)
}

func TestComputePriceSingleOffTier(t *testing.T) {
	svc := newTestService(t)

	// 90 min has no axe tier: pro-rated 3600 * 1.5 = 5400 per unit
	quote, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypeAxeBay, 90),
		PartySize: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 5400, quote.TotalCents)
}

func TestComputePriceComboSumsLegs(t *testing.T) {
	svc := newTestService(t)

	// Party of 10: 3 bays at 3600 plus 2 lanes at 3000
	quote, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity: availability.NewCombo(
			availability.Leg{Type: catalog.TypeAxeBay, Minutes: 60},
			availability.Leg{Type: catalog.TypeDuckpinLane, Minutes: 60},
		),
		PartySize: 10,
	})
	require.NoError(t, err)

	require.Len(t, quote.Breakdown, 2)
	assert.Equal(t, 3*3600, quote.Breakdown[0].Cents)
	assert.Equal(t, 2*3000, quote.Breakdown[1].Cents)
	assert.Equal(t, 3*3600+2*3000, quote.TotalCents)

	// Breakdown order follows leg order
	reversed, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity: availability.NewCombo(
			availability.Leg{Type: catalog.TypeDuckpinLane, Minutes: 60},
			availability.Leg{Type: catalog.TypeAxeBay, Minutes: 60},
		),
		PartySize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, quote.TotalCents, reversed.TotalCents)
	assert.Equal(t, 2*3000, reversed.Breakdown[0].Cents)
}

func TestComputePriceAddOnLineItem(t *testing.T) {
	svc := newTestService(t)

	quote, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypeAxeBay, 120),
		PartySize: 8,
		PartyArea: &availability.PartyAreaRequest{Count: 1, Minutes: 120},
	})
	require.NoError(t, err)

	require.Len(t, quote.Breakdown, 2)
	assert.Equal(t, 2*7500, quote.Breakdown[1].Cents) // 1 area x 7500/hr x 2 hr
	assert.Equal(t, 2*7200+2*7500, quote.TotalCents)  // 2 bays at the 120 tier
}

func TestComputePriceAddOnCountClamped(t *testing.T) {
	svc := newTestService(t)

	// Requesting 5 areas clamps to the 2 the venue has
	quote, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypeAxeBay, 60),
		PartySize: 4,
		PartyArea: &availability.PartyAreaRequest{Count: 5, Minutes: 60},
	})
	require.NoError(t, err)

	assert.Equal(t, 3600+2*7500, quote.TotalCents)
}

func TestComputePriceAddOnDurationRules(t *testing.T) {
	svc := newTestService(t)
	base := availability.NewSingle(catalog.TypeAxeBay, 120)

	cases := []struct {
		name    string
		minutes int
	}{
		{"below minimum", 30},
		{"not whole hours", 90},
		{"longer than visit", 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ComputePrice(context.Background(), availability.Request{
				Activity:  base,
				PartySize: 8,
				PartyArea: &availability.PartyAreaRequest{Count: 1, Minutes: tc.minutes},
			})
			assert.ErrorIs(t, err, ErrInvalidAddOnDuration)
		})
	}
}

func TestComputePriceAddOnCeiling(t *testing.T) {
	topo := availability.Topology{
		Capacity:      map[catalog.ResourceType]int{catalog.TypeAxeBay: 4, catalog.TypePartyArea: 2},
		GuestsPerUnit: map[catalog.ResourceType]int{catalog.TypeAxeBay: 4},
	}
	svc, err := NewService(DefaultRateBook(120), stubUnits{topo: topo}, stubCapacity{counts: topo.Capacity})
	require.NoError(t, err)

	// 180 min is whole hours and within the 240 min visit, but over the cap
	_, err = svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypeAxeBay, 240),
		PartySize: 8,
		PartyArea: &availability.PartyAreaRequest{Count: 1, Minutes: 180},
	})
	assert.ErrorIs(t, err, ErrInvalidAddOnDuration)
}

func TestComputePriceUnsupportedActivity(t *testing.T) {
	topo := availability.Topology{
		Capacity:      map[catalog.ResourceType]int{catalog.TypePartyArea: 2},
		GuestsPerUnit: map[catalog.ResourceType]int{catalog.TypePartyArea: 10},
	}
	svc, err := NewService(DefaultRateBook(480), stubUnits{topo: topo}, stubCapacity{counts: topo.Capacity})
	require.NoError(t, err)

	// Party areas book as add-ons, not as a primary activity
	_, err = svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypePartyArea, 60),
		PartySize: 8,
	})
	assert.ErrorIs(t, err, ErrUnsupportedActivity)
}

func TestComputePriceInvalidPartySize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ComputePrice(context.Background(), availability.Request{
		Activity:  availability.NewSingle(catalog.TypeAxeBay, 60),
		PartySize: 0,
	})
	assert.ErrorIs(t, err, availability.ErrInvalidPartySize)
}

func TestComputePriceDeterministic(t *testing.T) {
	svc := newTestService(t)
	req := availability.Request{
		Activity: availability.NewCombo(
			availability.Leg{Type: catalog.TypeAxeBay, Minutes: 90},
			availability.Leg{Type: catalog.TypeDuckpinLane, Minutes: 60},
		),
		PartySize: 11,
		PartyArea: &availability.PartyAreaRequest{Count: 2, Minutes: 120},
	}

	first, err := svc.ComputePrice(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.ComputePrice(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
