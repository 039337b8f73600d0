package repos

import (
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos/metric"
	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos/score"
	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos/vendor"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

type VendorRepo = vendor.VendorRepo
type MetricRepo = metric.MetricRepo
type ScoreRepo = score.ScoreRepo

func NewVendorRepo(db *gorm.DB, baseLog *logger.Logger) VendorRepo {
	return vendor.NewVendorRepo(db, baseLog)
}

func NewMetricRepo(db *gorm.DB, baseLog *logger.Logger) MetricRepo {
	return metric.NewMetricRepo(db, baseLog)
}

func NewScoreRepo(db *gorm.DB, baseLog *logger.Logger) ScoreRepo {
	return score.NewScoreRepo(db, baseLog)
}
