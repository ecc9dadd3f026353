package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/pricing"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/constants"
	"github.com/Bovice22/axequacks-app-sub000/pkg/cache"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
)

// PriceQuoter computes the charge for a configuration. Satisfied by the
// pricing service.
type PriceQuoter interface {
	ComputePrice(ctx context.Context, req availability.Request) (*pricing.Quote, error)
}

// WindowResolver answers the operating window for a date. Satisfied by the
// catalog service.
type WindowResolver interface {
	WindowFor(dateKey string, override *catalog.OperatingWindow) (*catalog.OperatingWindow, error)
}

// TopologyBuilder assembles the capacity snapshot. Satisfied by the
// availability service.
type TopologyBuilder interface {
	BuildTopology(ctx context.Context) (availability.Topology, error)
}

// HoldStorage parks and reads checkout holds. Satisfied by HoldStore.
type HoldStorage interface {
	Create(ctx context.Context, dateKey, guestEmail string, startMin, totalCents int, req availability.Request, intervals []availability.Interval) (*Hold, error)
	Get(ctx context.Context, holdID string) (*Hold, error)
	Release(ctx context.Context, holdID, dateKey string) error
	HeldIntervalsForDate(ctx context.Context, dateKey string) ([]availability.Interval, error)
}

// PromotionApplier discounts a quoted total. Satisfied by the promotions
// service.
type PromotionApplier interface {
	Apply(ctx context.Context, code string, totalCents int) (*promotions.ApplyPromotionResponse, error)
}

// EventPublisher emits booking lifecycle events. Satisfied by the
// notifications producer; nil disables publishing.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event BookingEvent) error
}

type Service interface {
	// QuoteBooking prices a configuration and optionally applies a
	// promotion code, without touching capacity.
	QuoteBooking(ctx context.Context, req QuoteBookingRequest) (*BookingQuoteResponse, error)

	// CreateHold validates a slot against live capacity and parks it in
	// Redis for the checkout window.
	CreateHold(ctx context.Context, req CreateHoldRequest) (*Hold, error)

	// ConfirmBooking converts a hold into a durable booking. Capacity is
	// re-validated transactionally; a hold that raced past the scan is
	// rejected with ErrSlotConflict.
	ConfirmBooking(ctx context.Context, req ConfirmBookingRequest) (*Booking, error)

	ReleaseHold(ctx context.Context, holdID string) error
	CancelBooking(ctx context.Context, bookingRef string) (*Booking, error)
	GetBooking(ctx context.Context, bookingRef string) (*Booking, error)
	ListByDate(ctx context.Context, dateKey string) ([]Booking, error)

	// SetEventPublisher wires the booking topic producer.
	SetEventPublisher(publisher EventPublisher)

	// SetCacheService wires availability cache invalidation.
	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	holds        HoldStorage
	availability TopologyBuilder
	catalog      WindowResolver
	overrides    catalog.OverrideLookup
	quoter       PriceQuoter
	promos       PromotionApplier
	publisher    EventPublisher
	cacheService cache.Service
}

func NewService(
	repo Repository,
	holds HoldStorage,
	availabilityService TopologyBuilder,
	catalogService WindowResolver,
	overrides catalog.OverrideLookup,
	quoter PriceQuoter,
	promos PromotionApplier,
) Service {
	return &service{
		repo:         repo,
		holds:        holds,
		availability: availabilityService,
		catalog:      catalogService,
		overrides:    overrides,
		quoter:       quoter,
		promos:       promos,
	}
}

func (s *service) SetEventPublisher(publisher EventPublisher) {
	s.publisher = publisher
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) QuoteBooking(ctx context.Context, req QuoteBookingRequest) (*BookingQuoteResponse, error) {
	engineReq, err := req.ToRequest()
	if err != nil {
		return nil, err
	}

	quote, err := s.quoter.ComputePrice(ctx, engineReq)
	if err != nil {
		return nil, err
	}

	resp := &BookingQuoteResponse{
		Quote:      *quote,
		TotalCents: quote.TotalCents,
	}

	if req.PromotionCode != "" {
		applied, err := s.promos.Apply(ctx, req.PromotionCode, quote.TotalCents)
		if err != nil {
			return nil, err
		}
		resp.Promotion = applied
		resp.TotalCents = applied.TotalCents
	}

	return resp, nil
}

func (s *service) CreateHold(ctx context.Context, req CreateHoldRequest) (*Hold, error) {
	engineReq, err := req.ToRequest()
	if err != nil {
		return nil, err
	}

	window, topo, err := s.resolveDate(ctx, req.DateKey)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, ErrVenueClosed
	}

	step := topo.StepFor(engineReq.Activity)
	if req.StartMin < window.OpenMin || req.StartMin >= window.CloseMin {
		return nil, fmt.Errorf("%w: %d outside [%d, %d)", ErrInvalidStartMinute, req.StartMin, window.OpenMin, window.CloseMin)
	}
	if (req.StartMin-window.OpenMin)%step != 0 {
		return nil, fmt.Errorf("%w: %d is not on the %d minute grid", ErrStartNotOnStep, req.StartMin, step)
	}

	// One pass of the shared predicate against committed plus held capacity.
	// Advisory only; the commit transaction is the authoritative gate.
	scan, err := s.scanAt(ctx, req.DateKey, window, topo, engineReq)
	if err != nil {
		return nil, err
	}
	for _, blocked := range scan.Blocked {
		if blocked == req.StartMin {
			return nil, ErrSlotConflict
		}
	}

	quote, err := s.quoter.ComputePrice(ctx, engineReq)
	if err != nil {
		return nil, err
	}

	intervals, err := s.decomposeIntervals(topo, engineReq, req.StartMin)
	if err != nil {
		return nil, err
	}

	hold, err := s.holds.Create(ctx, req.DateKey, req.GuestEmail, req.StartMin, quote.TotalCents, engineReq, intervals)
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, req.DateKey)
	return hold, nil
}

func (s *service) ConfirmBooking(ctx context.Context, req ConfirmBookingRequest) (*Booking, error) {
	hold, err := s.holds.Get(ctx, req.HoldID)
	if err != nil {
		return nil, err
	}

	_, topo, err := s.resolveDate(ctx, hold.DateKey)
	if err != nil {
		return nil, err
	}

	totalCents := hold.TotalCents
	promotionCode := ""
	if req.PromotionCode != "" {
		applied, err := s.promos.Apply(ctx, req.PromotionCode, hold.TotalCents)
		if err != nil {
			return nil, err
		}
		totalCents = applied.TotalCents
		promotionCode = applied.Code
	}

	addOnUnits, err := s.addOnUnits(topo, hold.Request)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &Booking{
		BookingRef:    generateBookingRef(hold.DateKey),
		DateKey:       hold.DateKey,
		GuestName:     req.GuestName,
		GuestEmail:    req.GuestEmail,
		PartySize:     hold.Request.PartySize,
		StartMin:      hold.StartMin,
		ActivityLabel: hold.Request.Activity.Label(),
		TotalCents:    totalCents,
		PromotionCode: promotionCode,
		Status:        StatusConfirmed.String(),
	}
	for _, iv := range hold.Intervals {
		booking.Intervals = append(booking.Intervals, ReservationInterval{
			DateKey:      hold.DateKey,
			ResourceType: iv.Type.String(),
			Units:        iv.Units,
			StartMin:     iv.StartMin,
			EndMin:       iv.EndMin,
		})
	}
	booking.Payments = []Payment{{
		AmountCents:   totalCents,
		Currency:      "USD",
		Status:        "COMPLETED",
		PaymentMethod: "mock",
		TransactionID: "MOCK-" + uuid.New().String(),
		ProcessedAt:   &now,
	}}

	err = s.repo.CreateBookingWithCapacityCheck(ctx, booking, topo, hold.Request, addOnUnits)
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			logger.GetDefault().LogBookingConflict(ctx, hold.DateKey, hold.StartMin, hold.Request.Activity.Label())
		}
		return nil, err
	}

	if err := s.holds.Release(ctx, hold.ID, hold.DateKey); err != nil {
		logger.GetDefault().Warn("failed to release hold after confirm", "hold_id", hold.ID, "error", err)
	}
	s.invalidateAvailability(ctx, hold.DateKey)

	logger.GetDefault().LogBookingConfirmed(ctx, booking.ID.String(), booking.BookingRef, booking.DateKey, booking.StartMin)
	s.publish(ctx, EventBookingConfirmed, booking)

	return booking, nil
}

func (s *service) ReleaseHold(ctx context.Context, holdID string) error {
	hold, err := s.holds.Get(ctx, holdID)
	if err != nil {
		return err
	}
	if err := s.holds.Release(ctx, hold.ID, hold.DateKey); err != nil {
		return err
	}
	s.invalidateAvailability(ctx, hold.DateKey)
	return nil
}

func (s *service) CancelBooking(ctx context.Context, bookingRef string) (*Booking, error) {
	booking, err := s.repo.GetByRef(ctx, bookingRef)
	if err != nil {
		return nil, err
	}
	if !Status(booking.Status).CanBeCancelled() {
		return nil, ErrAlreadyCancelled
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, booking.ID, StatusCancelled, &now); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = StatusCancelled.String()
	booking.CancelledAt = &now

	s.invalidateAvailability(ctx, booking.DateKey)
	logger.GetDefault().LogBookingCancelled(ctx, booking.BookingRef, booking.DateKey)
	s.publish(ctx, EventBookingCancelled, booking)

	return booking, nil
}

func (s *service) GetBooking(ctx context.Context, bookingRef string) (*Booking, error) {
	return s.repo.GetByRef(ctx, bookingRef)
}

func (s *service) ListByDate(ctx context.Context, dateKey string) ([]Booking, error) {
	if _, err := catalog.ParseDateKey(dateKey); err != nil {
		return nil, err
	}
	return s.repo.ListByDate(ctx, dateKey)
}

// resolveDate loads the topology and the override-adjusted window for a date.
func (s *service) resolveDate(ctx context.Context, dateKey string) (*catalog.OperatingWindow, availability.Topology, error) {
	topo, err := s.availability.BuildTopology(ctx)
	if err != nil {
		return nil, availability.Topology{}, err
	}

	var override *catalog.OperatingWindow
	if s.overrides != nil {
		w, granted, err := s.overrides.WindowOverride(ctx, dateKey)
		if err != nil {
			return nil, availability.Topology{}, fmt.Errorf("failed to resolve window override: %w", err)
		}
		if granted {
			override = w
		}
	}

	window, err := s.catalog.WindowFor(dateKey, override)
	if err != nil {
		return nil, availability.Topology{}, err
	}
	return window, topo, nil
}

func (s *service) scanAt(ctx context.Context, dateKey string, window *catalog.OperatingWindow, topo availability.Topology, req availability.Request) (availability.ScanResult, error) {
	snapshot, err := s.repo.IntervalsForDate(ctx, dateKey)
	if err != nil {
		return availability.ScanResult{}, err
	}
	held, err := s.holds.HeldIntervalsForDate(ctx, dateKey)
	if err != nil {
		return availability.ScanResult{}, err
	}
	return availability.BlockedStarts(window, topo, append(snapshot, held...), req)
}

func (s *service) addOnUnits(topo availability.Topology, req availability.Request) (int, error) {
	if req.PartyArea == nil {
		return 0, nil
	}
	return topo.PartyAreaUnits(req.PartyArea.Count)
}

// decomposeIntervals expands the request at a start into the interval rows a
// booking persists: one per leg in order, plus the add-on span.
func (s *service) decomposeIntervals(topo availability.Topology, req availability.Request, startMin int) ([]availability.Interval, error) {
	needs, err := topo.Needs(req.Activity, req.PartySize)
	if err != nil {
		return nil, err
	}

	var intervals []availability.Interval
	cursor := startMin
	for _, leg := range req.Activity.Legs {
		intervals = append(intervals, availability.Interval{
			Type:     leg.Type,
			Units:    needs[leg.Type],
			StartMin: cursor,
			EndMin:   cursor + leg.Minutes,
		})
		cursor += leg.Minutes
	}

	if req.PartyArea != nil {
		units, err := topo.PartyAreaUnits(req.PartyArea.Count)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, availability.Interval{
			Type:     catalog.TypePartyArea,
			Units:    units,
			StartMin: startMin,
			EndMin:   startMin + req.PartyArea.Minutes,
		})
	}

	return intervals, nil
}

func (s *service) invalidateAvailability(ctx context.Context, dateKey string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.AvailabilityKeyPattern(dateKey)); err != nil {
		logger.GetDefault().Warn("failed to invalidate availability cache", "date_key", dateKey, "error", err)
	}
}

func (s *service) publish(ctx context.Context, eventType BookingEventType, booking *Booking) {
	if s.publisher == nil {
		return
	}

	event := BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		BookingRef:    booking.BookingRef,
		DateKey:       booking.DateKey,
		StartMin:      booking.StartMin,
		GuestName:     booking.GuestName,
		GuestEmail:    booking.GuestEmail,
		ActivityLabel: booking.ActivityLabel,
		PartySize:     booking.PartySize,
		TotalCents:    booking.TotalCents,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		logger.GetDefault().Warn("failed to publish booking event", "booking_ref", booking.BookingRef, "error", err)
	}
}

// generateBookingRef builds a guest-facing reference like AXQ-20260314-7F3K2Q.
func generateBookingRef(dateKey string) string {
	compact := strings.ReplaceAll(dateKey, "-", "")
	suffix := strings.ToUpper(uuid.New().String()[:6])
	return fmt.Sprintf("AXQ-%s-%s", compact, suffix)
}
