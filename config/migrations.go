package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"dms.in/freightdesk/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250612_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.BookingEntry{}, &models.CompletedFile{},
					&models.MasterRecord{}, &models.Customer{}, &models.BookingRequest{})
			},
		},
		{
			ID: "20250718_add_local_charges",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.LocalChargeSheet{})
			},
		},
		{
			ID: "20250802_booking_no_unique",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_entries_booking_no ON booking_entries(booking_no) WHERE deleted_at IS NULL").Error
			},
		},
	})
	return m.Migrate()
}
