package database

import (
	"alostudio/internal/auth"
	"alostudio/internal/bookings"
	"alostudio/internal/catalog"
	"alostudio/internal/earnings"
	"alostudio/internal/frames"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension in place first
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&catalog.StudioService{},
		&catalog.ComboService{},
		&bookings.Booking{},
		&frames.FrameOrder{},
		&earnings.Record{},
		&auth.Admin{},
		&auth.Session{},
	)
}
