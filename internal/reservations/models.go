package reservations

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one confirmed visit. Capacity accounting lives entirely in the
// attached intervals; the booking row carries guest and payment context.
type Booking struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingRef    string     `gorm:"unique;not null;size:24" json:"booking_ref"`
	DateKey       string     `gorm:"not null;index;size:10" json:"date_key"`
	GuestName     string     `gorm:"not null;size:120" json:"guest_name"`
	GuestEmail    string     `gorm:"not null;size:255" json:"guest_email"`
	PartySize     int        `gorm:"not null" json:"party_size"`
	StartMin      int        `gorm:"not null" json:"start_min"`
	ActivityLabel string     `gorm:"not null;size:120" json:"activity_label"`
	TotalCents    int        `gorm:"not null" json:"total_cents"`
	PromotionCode string     `gorm:"size:32" json:"promotion_code,omitempty"`
	Status        string     `gorm:"type:varchar(20);check:status IN ('CONFIRMED', 'CANCELLED');default:'CONFIRMED'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`

	// Relationships
	Intervals []ReservationInterval `json:"intervals,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	Payments  []Payment             `json:"payments,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:RESTRICT;"`
}

// ReservationInterval is one unit-count claim on a resource type over a
// half-open minute span. A combo booking writes one row per leg plus one for
// a party-area add-on; the engine reads these back as its snapshot.
type ReservationInterval struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID    uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	DateKey      string    `gorm:"not null;size:10;index:idx_intervals_date_type,priority:1" json:"date_key"`
	ResourceType string    `gorm:"not null;size:20;index:idx_intervals_date_type,priority:2" json:"resource_type"`
	Units        int       `gorm:"not null" json:"units"`
	StartMin     int       `gorm:"not null" json:"start_min"`
	EndMin       int       `gorm:"not null" json:"end_min"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// Payment records the charge taken for a booking. Capture goes through an
// external processor; this row mirrors its outcome.
type Payment struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"booking_id"`
	AmountCents   int        `gorm:"not null" json:"amount_cents"`
	Currency      string     `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	Status        string     `gorm:"type:varchar(20);check:status IN ('PENDING', 'COMPLETED', 'FAILED', 'REFUNDED');default:'PENDING'" json:"status"`
	PaymentMethod string     `gorm:"type:varchar(50)" json:"payment_method"`
	TransactionID string     `gorm:"unique" json:"transaction_id"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// TableName sets the table name for ReservationInterval
func (ReservationInterval) TableName() string {
	return "reservation_intervals"
}

// TableName sets the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
