package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bovice22/axequacks-app-sub000/internal/availability"
	"github.com/Bovice22/axequacks-app-sub000/internal/catalog"
)

type Repository interface {
	// IntervalsForDate returns every committed interval for a date with
	// cancelled bookings excluded. This is the snapshot the advisory scan
	// consumes.
	IntervalsForDate(ctx context.Context, dateKey string) ([]availability.Interval, error)

	GetByRef(ctx context.Context, bookingRef string) (*Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListByDate(ctx context.Context, dateKey string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error

	// CreateBookingWithCapacityCheck is the authoritative admission gate: it
	// re-reads the date's intervals under a per-date transaction lock and
	// re-runs the same predicate the advisory scan used, so a booking that
	// raced past the scan is rejected here.
	CreateBookingWithCapacityCheck(ctx context.Context, booking *Booking, topo availability.Topology, req availability.Request, addOnUnits int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) IntervalsForDate(ctx context.Context, dateKey string) ([]availability.Interval, error) {
	return intervalsForDate(r.db.WithContext(ctx), dateKey)
}

func intervalsForDate(db *gorm.DB, dateKey string) ([]availability.Interval, error) {
	var rows []ReservationInterval
	err := db.
		Joins("JOIN bookings ON bookings.id = reservation_intervals.booking_id").
		Where("reservation_intervals.date_key = ?", dateKey).
		Where("bookings.status = ?", StatusConfirmed).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation intervals: %w", err)
	}

	intervals := make([]availability.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, availability.Interval{
			Type:     catalog.ResourceType(row.ResourceType),
			Units:    row.Units,
			StartMin: row.StartMin,
			EndMin:   row.EndMin,
		})
	}
	return intervals, nil
}

func (r *repository) GetByRef(ctx context.Context, bookingRef string) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Intervals").
		Preload("Payments").
		Where("booking_ref = ?", bookingRef).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Intervals").
		Preload("Payments").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListByDate(ctx context.Context, dateKey string) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Preload("Intervals").
		Where("date_key = ?", dateKey).
		Order("start_min, created_at").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}

	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CreateBookingWithCapacityCheck serializes commits per date with a Postgres
// advisory transaction lock. Row locks cannot fence concurrent inserts of new
// intervals, so the date itself is the mutex; the lock releases with the
// transaction.
func (r *repository) CreateBookingWithCapacityCheck(ctx context.Context, booking *Booking, topo availability.Topology, req availability.Request, addOnUnits int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Take the per-date commit lock
		lockKey := "bookings:" + booking.DateKey
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
			return fmt.Errorf("failed to acquire date lock: %w", err)
		}

		// 2. Re-read the snapshot under the lock
		snapshot, err := intervalsForDate(tx, booking.DateKey)
		if err != nil {
			return err
		}

		// 3. Re-run the admission predicate the advisory scan used
		needs, err := topo.Needs(req.Activity, req.PartySize)
		if err != nil {
			return err
		}
		if !availability.Fits(topo, snapshot, req, booking.StartMin, needs, addOnUnits) {
			return ErrSlotConflict
		}

		// 4. Persist the booking with its intervals and payment rows
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
}
