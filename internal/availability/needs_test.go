package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

func TestUnitsNeededCeilDivision(t *testing.T) {
	topo := testTopology()

	cases := []struct {
		partySize int
		want      int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{9, 3},
		{16, 4},
	}
	for _, tc := range cases {
		units, err := topo.UnitsNeeded(catalog.TypeAxeBay, tc.partySize)
		require.NoError(t, err)
		assert.Equal(t, tc.want, units, "party of %d", tc.partySize)
	}
}

func TestUnitsNeededRejectsOversizedParty(t *testing.T) {
	topo := testTopology()

	_, err := topo.UnitsNeeded(catalog.TypeAxeBay, 17)
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	_, err = topo.UnitsNeeded(catalog.TypeAxeBay, 0)
	assert.ErrorIs(t, err, ErrInvalidPartySize)

	_, err = topo.UnitsNeeded(catalog.TypeAxeBay, -3)
	assert.ErrorIs(t, err, ErrInvalidPartySize)
}

func TestUnitsNeededUnknownType(t *testing.T) {
	topo := testTopology()

	_, err := topo.UnitsNeeded("KARAOKE_ROOM", 4)
	assert.ErrorIs(t, err, catalog.ErrUnknownResourceType)
}

func TestPartyAreaUnitsClamped(t *testing.T) {
	topo := testTopology()

	units, err := topo.PartyAreaUnits(0)
	require.NoError(t, err)
	assert.Equal(t, 1, units)

	units, err = topo.PartyAreaUnits(1)
	require.NoError(t, err)
	assert.Equal(t, 1, units)

	units, err = topo.PartyAreaUnits(5)
	require.NoError(t, err)
	assert.Equal(t, 2, units)
}

func TestNeedsComboSameTypeTakesMax(t *testing.T) {
	topo := testTopology()

	activity := NewCombo(
		Leg{Type: catalog.TypeAxeBay, Minutes: 60},
		Leg{Type: catalog.TypeAxeBay, Minutes: 30},
	)

	needs, err := topo.Needs(activity, 9)
	require.NoError(t, err)

	// Sequential legs of the same type reuse units, never stack them
	assert.Equal(t, map[catalog.ResourceType]int{catalog.TypeAxeBay: 3}, needs)
}

func TestNeedsComboDistinctTypes(t *testing.T) {
	topo := testTopology()

	activity := NewCombo(
		Leg{Type: catalog.TypeAxeBay, Minutes: 60},
		Leg{Type: catalog.TypeDuckpinLane, Minutes: 60},
	)

	needs, err := topo.Needs(activity, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, needs[catalog.TypeAxeBay])
	assert.Equal(t, 2, needs[catalog.TypeDuckpinLane])
}

func TestStepForQuarterHourRule(t *testing.T) {
	topo := testTopology()

	assert.Equal(t, 15, topo.StepFor(NewSingle(catalog.TypeAxeBay, 60)))
	assert.Equal(t, 30, topo.StepFor(NewSingle(catalog.TypeDuckpinLane, 60)))

	// One coarse leg forces the whole combo onto the half-hour grid
	assert.Equal(t, 30, topo.StepFor(NewCombo(
		Leg{Type: catalog.TypeAxeBay, Minutes: 60},
		Leg{Type: catalog.TypeDuckpinLane, Minutes: 60},
	)))
}

func TestActivityValidate(t *testing.T) {
	assert.NoError(t, NewSingle(catalog.TypeAxeBay, 60).Validate())
	assert.NoError(t, NewCombo(
		Leg{Type: catalog.TypeAxeBay, Minutes: 60},
		Leg{Type: catalog.TypeDuckpinLane, Minutes: 60},
	).Validate())

	assert.ErrorIs(t, NewSingle(catalog.TypeAxeBay, 0).Validate(), ErrInvalidDuration)
	assert.ErrorIs(t, NewSingle("GO_KARTS", 60).Validate(), catalog.ErrUnknownResourceType)

	malformed := Activity{Kind: KindCombo, Legs: []Leg{{Type: catalog.TypeAxeBay, Minutes: 60}}}
	assert.ErrorIs(t, malformed.Validate(), ErrInvalidActivity)

	unknown := Activity{Kind: "TRIPLE", Legs: []Leg{{Type: catalog.TypeAxeBay, Minutes: 60}}}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidActivity)
}

func TestActivityTotalMinutes(t *testing.T) {
	assert.Equal(t, 90, NewCombo(
		Leg{Type: catalog.TypeAxeBay, Minutes: 60},
		Leg{Type: catalog.TypeDuckpinLane, Minutes: 30},
	).TotalMinutes())
}
