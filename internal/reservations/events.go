package reservations

import (
	"time"

	"github.com/google/uuid"
)

type BookingEventType string

const (
	EventBookingConfirmed BookingEventType = "booking.confirmed"
	EventBookingCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is the message published to the booking topic after a commit
// or cancellation. The notifications consumer turns these into guest emails.
type BookingEvent struct {
	Type          BookingEventType `json:"type"`
	BookingID     uuid.UUID        `json:"booking_id"`
	BookingRef    string           `json:"booking_ref"`
	DateKey       string           `json:"date_key"`
	StartMin      int              `json:"start_min"`
	GuestName     string           `json:"guest_name"`
	GuestEmail    string           `json:"guest_email"`
	ActivityLabel string           `json:"activity_label"`
	PartySize     int              `json:"party_size"`
	TotalCents    int              `json:"total_cents"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// PartitionKey keeps one date's events ordered on a single partition.
func (e BookingEvent) PartitionKey() string {
	return e.DateKey
}
