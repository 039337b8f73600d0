package db

import (
	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Vendor{},
		&types.VendorMetric{},
		&types.VendorScore{},
	)
}
