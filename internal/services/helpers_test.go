package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos"
	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos/testutil"
)

type testDeps struct {
	db      *gorm.DB
	vendors VendorService
	metrics MetricService
	scoring ScoringService
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	vendorRepo := repos.NewVendorRepo(db, log)
	metricRepo := repos.NewMetricRepo(db, log)
	scoreRepo := repos.NewScoreRepo(db, log)

	scoring := NewScoringService(db, log, vendorRepo, metricRepo, scoreRepo)
	return testDeps{
		db:      db,
		vendors: NewVendorService(db, log, vendorRepo, scoreRepo),
		metrics: NewMetricService(db, log, vendorRepo, metricRepo, scoring),
		scoring: scoring,
	}
}
