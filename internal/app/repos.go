package app

import (
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

type Repos struct {
	Vendor repos.VendorRepo
	Metric repos.MetricRepo
	Score  repos.ScoreRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Vendor: repos.NewVendorRepo(db, log),
		Metric: repos.NewMetricRepo(db, log),
		Score:  repos.NewScoreRepo(db, log),
	}
}
