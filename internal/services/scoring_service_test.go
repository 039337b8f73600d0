package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos"
	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos/testutil"
	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/apierr"
)

// faultyMetricRepo delegates to a real repo but fails LatestByVendor for one
// vendor, simulating a storage fault mid-sweep.
type faultyMetricRepo struct {
	repos.MetricRepo
	failFor uuid.UUID
}

func (fr *faultyMetricRepo) LatestByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.VendorMetric, error) {
	if vendorID == fr.failFor {
		return nil, errors.New("connection reset")
	}
	return fr.MetricRepo.LatestByVendor(ctx, tx, vendorID)
}

func TestRecomputeLatestNoMetricsWritesNothing(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)

	snapshot, err := deps.scoring.RecomputeLatest(ctx, nil, vendor)
	if err != nil {
		t.Fatalf("RecomputeLatest: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("RecomputeLatest: expected nil snapshot, got %+v", snapshot)
	}

	var count int64
	if err := deps.db.Model(&types.VendorScore{}).Where("vendor_id = ?", vendor.ID).Count(&count).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no snapshot rows, found %d", count)
	}
}

func TestRecomputeLatestUsesNewestMetric(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategoryDealer)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := testutil.SeedMetric(t, ctx, deps.db, vendor.ID, base)
	old.OnTimeDeliveryRate = 40
	if err := deps.db.Save(old).Error; err != nil {
		t.Fatalf("adjust old metric: %v", err)
	}
	newest := testutil.SeedMetric(t, ctx, deps.db, vendor.ID, base.Add(time.Hour))

	snapshot, err := deps.scoring.RecomputeLatest(ctx, nil, vendor)
	if err != nil {
		t.Fatalf("RecomputeLatest: %v", err)
	}
	if snapshot == nil {
		t.Fatalf("RecomputeLatest: expected a snapshot")
	}

	want := ComputeScore(newest, vendor.Category)
	if snapshot.Score != want {
		t.Fatalf("snapshot score=%v, want ComputeScore of newest metric %v", snapshot.Score, want)
	}
	if snapshot.VendorID != vendor.ID {
		t.Fatalf("snapshot vendor=%s, want %s", snapshot.VendorID, vendor.ID)
	}
}

func TestRecomputeLatestAppendsHistory(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)
	testutil.SeedMetric(t, ctx, deps.db, vendor.ID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < 3; i++ {
		if _, err := deps.scoring.RecomputeLatest(ctx, nil, vendor); err != nil {
			t.Fatalf("RecomputeLatest #%d: %v", i, err)
		}
	}

	var count int64
	if err := deps.db.Model(&types.VendorScore{}).Where("vendor_id = ?", vendor.ID).Count(&count).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 appended snapshots, found %d", count)
	}
}

func TestRecomputeVendorNotFound(t *testing.T) {
	deps := newTestDeps(t)

	_, _, err := deps.scoring.RecomputeVendor(context.Background(), uuid.New())
	if err == nil {
		t.Fatalf("RecomputeVendor: expected error for unknown vendor")
	}
	if apierr.KindOf(err) != apierr.KindNotFound {
		t.Fatalf("RecomputeVendor: kind=%s, want %s", apierr.KindOf(err), apierr.KindNotFound)
	}
}

func TestRecomputeAllCountsOnlyVendorsWithMetrics(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	withMetrics1 := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)
	withMetrics2 := testutil.SeedVendor(t, ctx, deps.db, "Borealis Parts", types.CategoryDealer)
	noMetrics := testutil.SeedVendor(t, ctx, deps.db, "Cascade Freight", types.CategoryDistributor)

	testutil.SeedMetric(t, ctx, deps.db, withMetrics1.ID, base)
	testutil.SeedMetric(t, ctx, deps.db, withMetrics2.ID, base)

	summary, err := deps.scoring.RecomputeAll(ctx)
	if err != nil {
		t.Fatalf("RecomputeAll: %v", err)
	}
	if summary.Processed != 2 {
		t.Fatalf("RecomputeAll: processed=%d, want 2", summary.Processed)
	}
	if len(summary.Failed) != 0 {
		t.Fatalf("RecomputeAll: failed=%v, want none", summary.Failed)
	}

	var count int64
	if err := deps.db.Model(&types.VendorScore{}).Where("vendor_id = ?", noMetrics.ID).Count(&count).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 0 {
		t.Fatalf("vendor without metrics should have no snapshots, found %d", count)
	}
}

func TestRecomputeAllContinuesPastFailures(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := testutil.SeedVendor(t, ctx, db, "Acme Metals", types.CategorySupplier)
	broken := testutil.SeedVendor(t, ctx, db, "Borealis Parts", types.CategoryDealer)
	last := testutil.SeedVendor(t, ctx, db, "Cascade Freight", types.CategoryDistributor)
	for _, v := range []*types.Vendor{first, broken, last} {
		testutil.SeedMetric(t, ctx, db, v.ID, base)
	}

	vendorRepo := repos.NewVendorRepo(db, log)
	metricRepo := &faultyMetricRepo{
		MetricRepo: repos.NewMetricRepo(db, log),
		failFor:    broken.ID,
	}
	scoreRepo := repos.NewScoreRepo(db, log)
	scoring := NewScoringService(db, log, vendorRepo, metricRepo, scoreRepo)

	summary, err := scoring.RecomputeAll(ctx)
	if err != nil {
		t.Fatalf("RecomputeAll: %v", err)
	}
	if summary.Processed != 2 {
		t.Fatalf("RecomputeAll: processed=%d, want the 2 healthy vendors", summary.Processed)
	}
	if len(summary.Failed) != 1 {
		t.Fatalf("RecomputeAll: failed=%v, want exactly one entry", summary.Failed)
	}
	if summary.Failed[0].VendorID != broken.ID {
		t.Fatalf("RecomputeAll: failed vendor=%s, want %s", summary.Failed[0].VendorID, broken.ID)
	}
	if summary.Failed[0].Reason == "" {
		t.Fatalf("RecomputeAll: failure entry carries no reason")
	}

	// Snapshots committed before the failure survive, and vendors after it
	// are still swept.
	for _, v := range []*types.Vendor{first, last} {
		var count int64
		if err := db.Model(&types.VendorScore{}).Where("vendor_id = ?", v.ID).Count(&count).Error; err != nil {
			t.Fatalf("count snapshots: %v", err)
		}
		if count != 1 {
			t.Fatalf("vendor %s: %d snapshots, want 1", v.Name, count)
		}
	}
	var count int64
	if err := db.Model(&types.VendorScore{}).Where("vendor_id = ?", broken.ID).Count(&count).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed vendor gained %d snapshots", count)
	}
}
