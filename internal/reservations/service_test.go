package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
	"github.com/Bovice22/axequacks-app-sub000/internal/pricing"
	"github.com/Bovice22/axequacks-app-sub000/internal/promotions"
)

// fakeRepo keeps bookings in memory and mirrors the transactional commit:
// re-read the snapshot, re-run the shared predicate, then persist.
type fakeRepo struct {
	bookings []*Booking
}

func (f *fakeRepo) IntervalsForDate(_ context.Context, dateKey string) ([]availability.Interval, error) {
	var intervals []availability.Interval
	for _, b := range f.bookings {
		if b.DateKey != dateKey || !Status(b.Status).IsActive() {
			continue
		}
		for _, row := range b.Intervals {
			intervals = append(intervals, availability.Interval{
				Type:     catalog.ResourceType(row.ResourceType),
				Units:    row.Units,
				StartMin: row.StartMin,
				EndMin:   row.EndMin,
			})
		}
	}
	return intervals, nil
}

func (f *fakeRepo) GetByRef(_ context.Context, bookingRef string) (*Booking, error) {
	for _, b := range f.bookings {
		if b.BookingRef == bookingRef {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (f *fakeRepo) ListByDate(_ context.Context, dateKey string) ([]Booking, error) {
	var list []Booking
	for _, b := range f.bookings {
		if b.DateKey == dateKey {
			list = append(list, *b)
		}
	}
	return list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status.String()
			b.CancelledAt = cancelledAt
			return nil
		}
	}
	return ErrBookingNotFound
}

func (f *fakeRepo) CreateBookingWithCapacityCheck(ctx context.Context, booking *Booking, topo availability.Topology, req availability.Request, addOnUnits int) error {
	snapshot, _ := f.IntervalsForDate(ctx, booking.DateKey)
	needs, err := topo.Needs(req.Activity, req.PartySize)
	if err != nil {
		return err
	}
	if !availability.Fits(topo, snapshot, req, booking.StartMin, needs, addOnUnits) {
		return ErrSlotConflict
	}
	booking.ID = uuid.New()
	f.bookings = append(f.bookings, booking)
	return nil
}

type fakeHolds struct {
	byID map[string]*Hold
}

func newFakeHolds() *fakeHolds {
	return &fakeHolds{byID: make(map[string]*Hold)}
}

func (f *fakeHolds) Create(_ context.Context, dateKey, guestEmail string, startMin, totalCents int, req availability.Request, intervals []availability.Interval) (*Hold, error) {
	hold := &Hold{
		ID:         uuid.New().String(),
		DateKey:    dateKey,
		GuestEmail: guestEmail,
		StartMin:   startMin,
		TotalCents: totalCents,
		Request:    req,
		Intervals:  intervals,
		ExpiresAt:  time.Now().Add(5 * time.Minute),
	}
	f.byID[hold.ID] = hold
	return hold, nil
}

func (f *fakeHolds) Get(_ context.Context, holdID string) (*Hold, error) {
	hold, ok := f.byID[holdID]
	if !ok {
		return nil, ErrHoldNotFound
	}
	return hold, nil
}

func (f *fakeHolds) Release(_ context.Context, holdID, _ string) error {
	delete(f.byID, holdID)
	return nil
}

func (f *fakeHolds) HeldIntervalsForDate(_ context.Context, dateKey string) ([]availability.Interval, error) {
	var intervals []availability.Interval
	for _, hold := range f.byID {
		if hold.DateKey == dateKey {
			intervals = append(intervals, hold.Intervals...)
		}
	}
	return intervals, nil
}

type fakeTopology struct {
	topo availability.Topology
}

func (f fakeTopology) BuildTopology(context.Context) (availability.Topology, error) {
	return f.topo, nil
}

type fakeWindows struct {
	window *catalog.OperatingWindow
}

func (f fakeWindows) WindowFor(string, *catalog.OperatingWindow) (*catalog.OperatingWindow, error) {
	return f.window, nil
}

type fakeQuoter struct{}

func (fakeQuoter) ComputePrice(_ context.Context, req availability.Request) (*pricing.Quote, error) {
	return &pricing.Quote{
		TotalCents: 3600 * req.PartySize,
		Breakdown:  []pricing.LineItem{{Label: req.Activity.Label(), Cents: 3600 * req.PartySize}},
	}, nil
}

type fakePromos struct{}

func (fakePromos) Apply(_ context.Context, code string, totalCents int) (*promotions.ApplyPromotionResponse, error) {
	if code != "TEN" {
		return nil, promotions.ErrPromotionNotFound
	}
	discount := totalCents / 10
	return &promotions.ApplyPromotionResponse{
		Code:          code,
		OriginalCents: totalCents,
		DiscountCents: discount,
		TotalCents:    totalCents - discount,
	}, nil
}

type captureEvents struct {
	events []BookingEvent
}

func (c *captureEvents) PublishBookingEvent(_ context.Context, event BookingEvent) error {
	c.events = append(c.events, event)
	return nil
}

func newBookingTestService() (Service, *fakeRepo, *fakeHolds, *captureEvents) {
	repo := &fakeRepo{}
	holds := newFakeHolds()
	events := &captureEvents{}

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
		QuarterHour: map[catalog.ResourceType]bool{catalog.TypeAxeBay: true},
	}
	window := &catalog.OperatingWindow{OpenMin: 960, CloseMin: 1380}

	svc := NewService(repo, holds, fakeTopology{topo}, fakeWindows{window}, nil, fakeQuoter{}, fakePromos{})
	svc.SetEventPublisher(events)
	return svc, repo, holds, events
}

func holdRequest(startMin int) CreateHoldRequest {
	return CreateHoldRequest{
		DateKey:    "2026-09-04",
		StartMin:   startMin,
		Kind:       "SINGLE",
		Legs:       []availability.LegRequest{{Type: "AXE_BAY", Minutes: 60}},
		PartySize:  12,
		GuestEmail: "guest@example.com",
	}
}

func TestHoldThenConfirm(t *testing.T) {
	svc, repo, holds, events := newBookingTestService()
	ctx := context.Background()

	hold, err := svc.CreateHold(ctx, holdRequest(1020))
	require.NoError(t, err)
	assert.Equal(t, 12*3600, hold.TotalCents)
	require.Len(t, hold.Intervals, 1)
	assert.Equal(t, 3, hold.Intervals[0].Units)

	booking, err := svc.ConfirmBooking(ctx, ConfirmBookingRequest{
		HoldID:     hold.ID,
		GuestName:  "Rae Duckworth",
		GuestEmail: "guest@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed.String(), booking.Status)
	assert.Contains(t, booking.BookingRef, "AXQ-20260904-")
	assert.Len(t, repo.bookings, 1)
	assert.Empty(t, holds.byID, "hold released on confirm")

	require.Len(t, events.events, 1)
	assert.Equal(t, EventBookingConfirmed, events.events[0].Type)

	// The committed intervals feed the next scan
	intervals, err := repo.IntervalsForDate(ctx, "2026-09-04")
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, 1020, intervals[0].StartMin)
	assert.Equal(t, 1080, intervals[0].EndMin)
}

func TestConfirmRejectsRacedBooking(t *testing.T) {
	svc, _, _, _ := newBookingTestService()
	ctx := context.Background()

	// Both parties hold 3 of the 4 bays over the same hour; the scan lets
	// the second hold through only because holds here do not reserve, so
	// the commit gate must catch it.
	first, err := svc.CreateHold(ctx, holdRequest(1020))
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, ConfirmBookingRequest{
		HoldID: first.ID, GuestName: "First Party", GuestEmail: "first@example.com",
	})
	require.NoError(t, err)

	// Forge a second hold for the same slot bypassing the advisory scan
	second, err := svc.CreateHold(ctx, holdRequest(1080))
	require.NoError(t, err)
	second.StartMin = 1020
	second.Intervals[0].StartMin = 1020
	second.Intervals[0].EndMin = 1080

	_, err = svc.ConfirmBooking(ctx, ConfirmBookingRequest{
		HoldID: second.ID, GuestName: "Second Party", GuestEmail: "second@example.com",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestCreateHoldValidation(t *testing.T) {
	svc, _, _, _ := newBookingTestService()
	ctx := context.Background()

	req := holdRequest(950)
	_, err := svc.CreateHold(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidStartMinute)

	req = holdRequest(1022)
	_, err = svc.CreateHold(ctx, req)
	assert.ErrorIs(t, err, ErrStartNotOnStep)
}

func TestCreateHoldClosedDay(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, newFakeHolds(), fakeTopology{availability.Topology{
		Capacity:      map[catalog.ResourceType]int{catalog.TypeAxeBay: 4},
		GuestsPerUnit: map[catalog.ResourceType]int{catalog.TypeAxeBay: 4},
	}}, fakeWindows{nil}, nil, fakeQuoter{}, fakePromos{})

	_, err := svc.CreateHold(context.Background(), holdRequest(1020))
	assert.ErrorIs(t, err, ErrVenueClosed)
}

func TestCreateHoldBlockedByHeldCapacity(t *testing.T) {
	svc, _, _, _ := newBookingTestService()
	ctx := context.Background()

	// First hold takes 3 of 4 bays over [1020, 1080)
	_, err := svc.CreateHold(ctx, holdRequest(1020))
	require.NoError(t, err)

	// A second 3-bay hold over the same hour cannot fit
	_, err = svc.CreateHold(ctx, holdRequest(1020))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestConfirmAppliesPromotion(t *testing.T) {
	svc, _, _, _ := newBookingTestService()
	ctx := context.Background()

	hold, err := svc.CreateHold(ctx, holdRequest(1020))
	require.NoError(t, err)

	booking, err := svc.ConfirmBooking(ctx, ConfirmBookingRequest{
		HoldID:        hold.ID,
		GuestName:     "Party Of Twelve",
		GuestEmail:    "guest@example.com",
		PromotionCode: "TEN",
	})
	require.NoError(t, err)

	assert.Equal(t, 12*3600*9/10, booking.TotalCents)
	assert.Equal(t, "TEN", booking.PromotionCode)
	require.Len(t, booking.Payments, 1)
	assert.Equal(t, booking.TotalCents, booking.Payments[0].AmountCents)
}

func TestCancelBooking(t *testing.T) {
	svc, repo, _, events := newBookingTestService()
	ctx := context.Background()

	hold, err := svc.CreateHold(ctx, holdRequest(1020))
	require.NoError(t, err)
	booking, err := svc.ConfirmBooking(ctx, ConfirmBookingRequest{
		HoldID: hold.ID, GuestName: "Rae Duckworth", GuestEmail: "guest@example.com",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(ctx, booking.BookingRef)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled.String(), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// Cancelled intervals no longer count against capacity
	intervals, err := repo.IntervalsForDate(ctx, "2026-09-04")
	require.NoError(t, err)
	assert.Empty(t, intervals)

	// Cancelling twice fails
	_, err = svc.CancelBooking(ctx, booking.BookingRef)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	assert.Equal(t, EventBookingCancelled, events.events[len(events.events)-1].Type)
}

func TestQuoteBookingWithPromotion(t *testing.T) {
	svc, _, _, _ := newBookingTestService()
	ctx := context.Background()

	quote, err := svc.QuoteBooking(ctx, QuoteBookingRequest{
		Kind:      "SINGLE",
		Legs:      []availability.LegRequest{{Type: "AXE_BAY", Minutes: 60}},
		PartySize: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, 8*3600, quote.TotalCents)
	assert.Nil(t, quote.Promotion)

	discounted, err := svc.QuoteBooking(ctx, QuoteBookingRequest{
		Kind:          "SINGLE",
		Legs:          []availability.LegRequest{{Type: "AXE_BAY", Minutes: 60}},
		PartySize:     8,
		PromotionCode: "TEN",
	})
	require.NoError(t, err)
	assert.Equal(t, 8*3600*9/10, discounted.TotalCents)
	require.NotNil(t, discounted.Promotion)
}

func TestGenerateBookingRef(t *testing.T) {
	ref := generateBookingRef("2026-09-04")
	assert.Regexp(t, `^AXQ-20260904-[0-9A-F]{6}$`, ref)

	assert.NotEqual(t, ref, generateBookingRef("2026-09-04"))
}
