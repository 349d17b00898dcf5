package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Backstop for the advisory-lock claim: at most one active booking
	// per slot, enforced by the store itself. Terminal bookings fall out
	// of the index so a cancelled slot can be rebooked.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_active_booking_per_slot
		ON bookings (booking_date, booking_time)
		WHERE status IN ('confirmed', 'payment_submitted');
	`).Error
	if err != nil {
		return err
	}

	// Availability lookups filter by date and status
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_date_status
		ON bookings (booking_date, status);
	`).Error
	if err != nil {
		return err
	}

	// Earnings summaries scan by payment date
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_earnings_payment_date
		ON earnings_records (payment_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
