package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Composite index backing the per-date capacity scan at commit time
	err := db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_intervals_date_type
		ON reservation_intervals (date_key, resource_type);
	`).Error
	if err != nil {
		return err
	}

	// Index for listing a day's bookings by status
	err = db.Exec(`
		CREATE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_date_status
		ON bookings (date_key, status);
	`).Error
	if err != nil {
		return err
	}

	// Booking references must stay unique across the whole table
	err = db.Exec(`
		CREATE UNIQUE INDEX CONCURRENTLY IF NOT EXISTS idx_bookings_booking_ref
		ON bookings (booking_ref);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
