package availability

import (
	"fmt"
	"strings"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

type Kind string

const (
	KindSingle Kind = "SINGLE"
	KindCombo  Kind = "COMBO"
)

// Leg is one sub-activity: a resource type occupied for a span of minutes.
type Leg struct {
	Type    catalog.ResourceType `json:"type"`
	Minutes int                  `json:"minutes"`
}

// Activity is the closed tagged variant the engine operates on. It is
// resolved once at the API boundary; nothing downstream re-parses display
// strings. A combo's legs are ordered: the first leg runs [start, start+d1),
// the second runs [start+d1, start+d1+d2), back to back with no gap.
type Activity struct {
	Kind Kind  `json:"kind"`
	Legs []Leg `json:"legs"`
}

// NewSingle builds a single-activity request.
func NewSingle(resourceType catalog.ResourceType, minutes int) Activity {
	return Activity{
		Kind: KindSingle,
		Legs: []Leg{{Type: resourceType, Minutes: minutes}},
	}
}

// NewCombo builds a two-leg combo in the given order.
func NewCombo(first, second Leg) Activity {
	return Activity{
		Kind: KindCombo,
		Legs: []Leg{first, second},
	}
}

// TotalMinutes is the full visit duration: the sum of all leg durations.
func (a Activity) TotalMinutes() int {
	total := 0
	for _, leg := range a.Legs {
		total += leg.Minutes
	}
	return total
}

// Validate rejects malformed variants before any scan or pricing runs.
func (a Activity) Validate() error {
	switch a.Kind {
	case KindSingle:
		if len(a.Legs) != 1 {
			return fmt.Errorf("%w: single activity must have exactly one leg", ErrInvalidActivity)
		}
	case KindCombo:
		if len(a.Legs) != 2 {
			return fmt.Errorf("%w: combo activity must have exactly two legs", ErrInvalidActivity)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidActivity, a.Kind)
	}

	for _, leg := range a.Legs {
		if !leg.Type.IsValid() {
			return fmt.Errorf("%w: %s", catalog.ErrUnknownResourceType, leg.Type)
		}
		if leg.Minutes <= 0 {
			return fmt.Errorf("%w: leg duration %d", ErrInvalidDuration, leg.Minutes)
		}
	}

	return nil
}

// Label is a short human-readable tag used in logs and price breakdowns.
func (a Activity) Label() string {
	parts := make([]string, 0, len(a.Legs))
	for _, leg := range a.Legs {
		parts = append(parts, fmt.Sprintf("%s %dmin", leg.Type, leg.Minutes))
	}
	if a.Kind == KindCombo {
		return "Combo: " + strings.Join(parts, " then ")
	}
	return strings.Join(parts, ", ")
}

// PartyAreaRequest is the optional add-on: a count of areas held for an
// independent duration starting with the primary activity.
type PartyAreaRequest struct {
	Count   int `json:"count"`
	Minutes int `json:"minutes"`
}

// Request is one candidate booking configuration to evaluate.
type Request struct {
	Activity  Activity
	PartySize int
	PartyArea *PartyAreaRequest
}
