package availability

import (
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

// Interval is one committed claim on capacity: a unit count of a resource
// type held over a half-open minute span. The engine treats the supplied
// slice as an immutable snapshot; it never mutates or caches it.
type Interval struct {
	Type     catalog.ResourceType `json:"type"`
	Units    int                  `json:"units"`
	StartMin int                  `json:"start_min"`
	EndMin   int                  `json:"end_min"`
}

// Overlaps reports whether two half-open spans intersect.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// subInterval is one decomposed resource claim of a candidate request.
type subInterval struct {
	resourceType catalog.ResourceType
	startMin     int
	endMin       int
	units        int
}

// Decompose expands a request starting at startMin into its per-type
// sub-intervals: one span for a single, two contiguous ordered spans for a
// combo, plus an independent span for a party-area add-on. The request must
// already be validated; needs carries the pre-computed unit requirements.
func decompose(req Request, startMin int, needs map[catalog.ResourceType]int, addOnUnits int) []subInterval {
	subs := make([]subInterval, 0, len(req.Activity.Legs)+1)

	cursor := startMin
	for _, leg := range req.Activity.Legs {
		subs = append(subs, subInterval{
			resourceType: leg.Type,
			startMin:     cursor,
			endMin:       cursor + leg.Minutes,
			units:        needs[leg.Type],
		})
		cursor += leg.Minutes
	}

	if req.PartyArea != nil {
		subs = append(subs, subInterval{
			resourceType: catalog.TypePartyArea,
			startMin:     startMin,
			endMin:       startMin + req.PartyArea.Minutes,
			units:        addOnUnits,
		})
	}

	return subs
}

// PeakUnits computes the maximum concurrent reserved-unit count of one
// resource type over [startMin, endMin). Reservations are axis-aligned in
// time, so the peak occurs at the span start or at a reservation start
// boundary inside the span; evaluating the running sum at those points is
// sufficient.
func PeakUnits(snapshot []Interval, resourceType catalog.ResourceType, startMin, endMin int) int {
	points := []int{startMin}
	for _, iv := range snapshot {
		if iv.Type != resourceType {
			continue
		}
		if iv.StartMin > startMin && iv.StartMin < endMin {
			points = append(points, iv.StartMin)
		}
	}

	peak := 0
	for _, p := range points {
		sum := 0
		for _, iv := range snapshot {
			if iv.Type == resourceType && iv.StartMin <= p && p < iv.EndMin {
				sum += iv.Units
			}
		}
		if sum > peak {
			peak = sum
		}
	}

	return peak
}

// Fits reports whether the request, started at startMin, stays within
// capacity for every decomposed sub-interval against the snapshot. This is
// the single admission predicate: the advisory scan and the transactional
// commit check both call it, so the two tiers cannot disagree on identical
// snapshots.
func Fits(topo Topology, snapshot []Interval, req Request, startMin int, needs map[catalog.ResourceType]int, addOnUnits int) bool {
	for _, sub := range decompose(req, startMin, needs, addOnUnits) {
		peak := PeakUnits(snapshot, sub.resourceType, sub.startMin, sub.endMin)
		if peak+sub.units > topo.Capacity[sub.resourceType] {
			return false
		}
	}
	return true
}

// ScanResult classifies every stepped candidate start of one date.
type ScanResult struct {
	Step       int   `json:"step"`
	Candidates []int `json:"candidates"`
	Blocked    []int `json:"blocked"`
	Open       []int `json:"open"`
}

// BlockedStarts scans every stepped candidate start minute within the window
// and classifies it Open or Blocked against the snapshot. A nil window
// (closed day) yields an empty result without consulting the snapshot. A
// window too short for the request blocks every candidate; both are ordinary
// results, not errors. The scan is pure: same inputs, same output, no clock.
func BlockedStarts(window *catalog.OperatingWindow, topo Topology, snapshot []Interval, req Request) (ScanResult, error) {
	if err := req.Activity.Validate(); err != nil {
		return ScanResult{}, err
	}

	needs, err := topo.Needs(req.Activity, req.PartySize)
	if err != nil {
		return ScanResult{}, err
	}

	addOnUnits := 0
	if req.PartyArea != nil {
		// The add-on rides along the primary visit and cannot outlast it;
		// pricing enforces the same bound.
		if req.PartyArea.Minutes <= 0 || req.PartyArea.Minutes > req.Activity.TotalMinutes() {
			return ScanResult{}, ErrInvalidAddOn
		}
		addOnUnits, err = topo.PartyAreaUnits(req.PartyArea.Count)
		if err != nil {
			return ScanResult{}, err
		}
	}

	result := ScanResult{Step: topo.StepFor(req.Activity)}
	if window == nil {
		return result, nil // closed day: no candidates at all
	}

	totalMinutes := req.Activity.TotalMinutes()
	lastStart := window.CloseMin - totalMinutes

	for m := window.OpenMin; m < window.CloseMin; m += result.Step {
		result.Candidates = append(result.Candidates, m)

		// Cannot finish before close; when the window is shorter than the
		// request this blocks every candidate.
		if m > lastStart {
			result.Blocked = append(result.Blocked, m)
			continue
		}

		if req.PartyArea != nil && m+req.PartyArea.Minutes > window.CloseMin {
			result.Blocked = append(result.Blocked, m)
			continue
		}

		if !Fits(topo, snapshot, req, m, needs, addOnUnits) {
			result.Blocked = append(result.Blocked, m)
			continue
		}

		result.Open = append(result.Open, m)
	}

	return result, nil
}
