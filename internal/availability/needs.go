package availability

import (
	"fmt"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

// Topology is the immutable capacity snapshot the pure engine computes
// against: unit counts, per-unit seating, and slot-step capability per
// resource type. The service layer assembles one from the catalog per call;
// the engine itself holds no process-wide state.
type Topology struct {
	Capacity      map[catalog.ResourceType]int
	GuestsPerUnit map[catalog.ResourceType]int
	QuarterHour   map[catalog.ResourceType]bool
}

// UnitsNeeded maps (resource type, party size) to the unit count required,
// rounding up: ceil(partySize / guestsPerUnit). Party sizes above what the
// type can physically seat are rejected rather than scanned.
func (t Topology) UnitsNeeded(resourceType catalog.ResourceType, partySize int) (int, error) {
	if partySize <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPartySize, partySize)
	}

	capacity, ok := t.Capacity[resourceType]
	if !ok || capacity <= 0 {
		return 0, fmt.Errorf("%w: %s", catalog.ErrUnknownResourceType, resourceType)
	}
	guests, ok := t.GuestsPerUnit[resourceType]
	if !ok || guests <= 0 {
		return 0, fmt.Errorf("%w: %s has no per-unit guest capacity", catalog.ErrUnknownResourceType, resourceType)
	}

	if partySize > capacity*guests {
		return 0, fmt.Errorf("%w: %d exceeds maximum %d for %s", ErrInvalidPartySize, partySize, capacity*guests, resourceType)
	}

	return (partySize + guests - 1) / guests, nil
}

// PartyAreaUnits resolves the add-on unit count: the explicit requested count
// (never derived from party size) clamped to at least 1 and at most the
// party-area capacity.
func (t Topology) PartyAreaUnits(requested int) (int, error) {
	capacity, ok := t.Capacity[catalog.TypePartyArea]
	if !ok || capacity <= 0 {
		return 0, fmt.Errorf("%w: %s", catalog.ErrUnknownResourceType, catalog.TypePartyArea)
	}

	units := requested
	if units < 1 {
		units = 1
	}
	if units > capacity {
		units = capacity
	}
	return units, nil
}

// Needs computes the required unit count per resource type for a request's
// primary activity. Combo legs are computed independently because they
// occupy different types at different (sequential) times, never combined.
func (t Topology) Needs(activity Activity, partySize int) (map[catalog.ResourceType]int, error) {
	if err := activity.Validate(); err != nil {
		return nil, err
	}

	needs := make(map[catalog.ResourceType]int, len(activity.Legs))
	for _, leg := range activity.Legs {
		units, err := t.UnitsNeeded(leg.Type, partySize)
		if err != nil {
			return nil, err
		}
		// Same type twice in a combo keeps the larger requirement; the legs
		// are sequential so the units are not additive.
		if units > needs[leg.Type] {
			needs[leg.Type] = units
		}
	}

	return needs, nil
}

// StepFor returns the candidate-start step in minutes: 15 when every leg's
// resource type accepts quarter-hour starts, else 30. The party-area add-on
// never changes the step.
func (t Topology) StepFor(activity Activity) int {
	for _, leg := range activity.Legs {
		if !t.QuarterHour[leg.Type] {
			return 30
		}
	}
	return 15
}
