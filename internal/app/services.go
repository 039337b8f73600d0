package app

import (
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
	"github.com/vendorpulse/vendorpulse-backend/internal/services"
)

type Services struct {
	Vendor  services.VendorService
	Metric  services.MetricService
	Scoring services.ScoringService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	scoring := services.NewScoringService(db, log, reposet.Vendor, reposet.Metric, reposet.Score)
	return Services{
		Vendor:  services.NewVendorService(db, log, reposet.Vendor, reposet.Score),
		Metric:  services.NewMetricService(db, log, reposet.Vendor, reposet.Metric, scoring),
		Scoring: scoring,
	}
}
