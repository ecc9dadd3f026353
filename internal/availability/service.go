package availability

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/constants"
	"github.com/Bovice22/axequacks-app-sub000/pkg/cache"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

// ReservationSource supplies the committed reservation snapshot for a date,
// cancelled bookings already excluded. Implemented by the reservations
// repository; declared here to avoid a package cycle.
type ReservationSource interface {
	IntervalsForDate(ctx context.Context, dateKey string) ([]Interval, error)
}

// HoldSource supplies intervals claimed by live checkout holds so the scan
// greys out slots mid-checkout. Optional.
type HoldSource interface {
	HeldIntervalsForDate(ctx context.Context, dateKey string) ([]Interval, error)
}

type Service interface {
	// ComputeNeeds resolves required unit counts per resource type for the
	// primary activity.
	ComputeNeeds(ctx context.Context, activity Activity, partySize int) (map[catalog.ResourceType]int, error)

	// Search classifies every candidate start of one date for a request. The
	// result is advisory: the authoritative capacity check happens again,
	// transactionally, at commit time.
	Search(ctx context.Context, query Query) (*SearchResult, error)

	// BuildTopology assembles the capacity snapshot the pure engine and the
	// commit-time re-check both evaluate against.
	BuildTopology(ctx context.Context) (Topology, error)

	// SetHoldSource wires the checkout-hold reader into scans.
	SetHoldSource(holds HoldSource)

	// SetCacheService enables short-TTL scan caching.
	SetCacheService(cacheService cache.Service, ttl time.Duration)
}

// Query is one availability lookup.
type Query struct {
	DateKey string
	Request Request
	// WindowOverride, when set, is a pre-validated Override Authority
	// decision supplied by the caller. When nil, any granted override for
	// the date is resolved automatically.
	WindowOverride *catalog.OperatingWindow
}

// SearchResult is the classified slot grid for one date.
type SearchResult struct {
	DateKey   string                   `json:"date_key"`
	Closed    bool                     `json:"closed"`
	Window    *catalog.OperatingWindow `json:"window,omitempty"`
	Step      int                      `json:"step"`
	Blocked   []int                    `json:"blocked_starts"`
	Open      []int                    `json:"open_starts"`
	ScannedAt time.Time                `json:"scanned_at"`
}

type service struct {
	catalog      catalog.Service
	overrides    catalog.OverrideLookup
	reservations ReservationSource
	holds        HoldSource
	cacheService cache.Service
	cacheTTL     time.Duration
}

func NewService(catalogService catalog.Service, overrides catalog.OverrideLookup, reservations ReservationSource) Service {
	return &service{
		catalog:      catalogService,
		overrides:    overrides,
		reservations: reservations,
	}
}

func (s *service) SetHoldSource(holds HoldSource) {
	s.holds = holds
}

func (s *service) SetCacheService(cacheService cache.Service, ttl time.Duration) {
	s.cacheService = cacheService
	s.cacheTTL = ttl
}

func (s *service) BuildTopology(ctx context.Context) (Topology, error) {
	counts, err := s.catalog.Capacities(ctx)
	if err != nil {
		return Topology{}, fmt.Errorf("failed to load capacities: %w", err)
	}

	topo := Topology{
		Capacity:      counts,
		GuestsPerUnit: make(map[catalog.ResourceType]int),
		QuarterHour:   make(map[catalog.ResourceType]bool),
	}
	for _, t := range []catalog.ResourceType{catalog.TypeAxeBay, catalog.TypeDuckpinLane, catalog.TypePartyArea} {
		if guests, err := s.catalog.PerUnitGuests(t); err == nil {
			topo.GuestsPerUnit[t] = guests
		}
		topo.QuarterHour[t] = s.catalog.QuarterHourStarts(t)
	}

	return topo, nil
}

func (s *service) ComputeNeeds(ctx context.Context, activity Activity, partySize int) (map[catalog.ResourceType]int, error) {
	topo, err := s.BuildTopology(ctx)
	if err != nil {
		return nil, err
	}
	return topo.Needs(activity, partySize)
}

func (s *service) Search(ctx context.Context, query Query) (*SearchResult, error) {
	started := time.Now()

	// Validation failures surface before any snapshot read.
	if err := query.Request.Activity.Validate(); err != nil {
		return nil, err
	}

	topo, err := s.BuildTopology(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := topo.Needs(query.Request.Activity, query.Request.PartySize); err != nil {
		return nil, err
	}

	override := query.WindowOverride
	if override == nil && s.overrides != nil {
		w, granted, err := s.overrides.WindowOverride(ctx, query.DateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve window override: %w", err)
		}
		if granted {
			override = w
		}
	}

	window, err := s.catalog.WindowFor(query.DateKey, override)
	if err != nil {
		return nil, err
	}

	// Closed day: all slots blocked without touching the reservation store.
	if window == nil {
		scan, err := BlockedStarts(nil, topo, nil, query.Request)
		if err != nil {
			return nil, err
		}
		return &SearchResult{
			DateKey:   query.DateKey,
			Closed:    true,
			Step:      scan.Step,
			ScannedAt: time.Now().UTC(),
		}, nil
	}

	// An unfingerprintable request shape skips the cache for this scan
	// rather than failing it.
	cacheKey := ""
	if print, err := s.fingerprint(query, window); err != nil {
		logger.GetDefault().Debug("failed to fingerprint availability query", "error", err)
	} else {
		cacheKey = constants.BuildAvailabilityKey(query.DateKey, print)
	}
	if s.cacheService != nil && cacheKey != "" {
		var cached SearchResult
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			logger.GetDefault().Debug("cache hit for availability scan", "key", cacheKey)
			return &cached, nil
		}
	}

	snapshot, err := s.reservations.IntervalsForDate(ctx, query.DateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read reservations: %w", err)
	}
	if s.holds != nil {
		held, err := s.holds.HeldIntervalsForDate(ctx, query.DateKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read holds: %w", err)
		}
		snapshot = append(snapshot, held...)
	}

	scan, err := BlockedStarts(window, topo, snapshot, query.Request)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		DateKey:   query.DateKey,
		Window:    window,
		Step:      scan.Step,
		Blocked:   scan.Blocked,
		Open:      scan.Open,
		ScannedAt: time.Now().UTC(),
	}

	if s.cacheService != nil && cacheKey != "" {
		if err := s.cacheService.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			logger.GetDefault().Debug("failed to cache availability scan", "error", err)
		}
	}

	logger.GetDefault().LogAvailabilityScan(ctx, query.DateKey, query.Request.Activity.Label(),
		len(scan.Candidates), len(scan.Blocked), time.Since(started))

	return result, nil
}

// fingerprint hashes the request shape so distinct configurations cache
// independently.
func (s *service) fingerprint(query Query, window *catalog.OperatingWindow) (string, error) {
	payload, err := json.Marshal(struct {
		Request Request                  `json:"request"`
		Window  *catalog.OperatingWindow `json:"window"`
	}{query.Request, window})
	if err != nil {
		return "", fmt.Errorf("failed to marshal query fingerprint: %w", err)
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:8]), nil
}
