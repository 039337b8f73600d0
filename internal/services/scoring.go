package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos"
	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/observability/metrics"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/apierr"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

const (
	deliveryWeight       = 0.45
	complianceWeight     = 0.40
	reliabilityBase      = 15.0
	complaintPenaltyStep = 1.25
	complaintPenaltyCap  = 25.0
	missingDocsDeduction = 10.0
)

// ClampScore clamps a score to the inclusive range [0, 100].
func ClampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// complaintPenalty is the penalty curve for complaint counts: 1.25 per
// complaint, saturating at 20 complaints.
func complaintPenalty(complaints int) float64 {
	penalty := float64(complaints) * complaintPenaltyStep
	if penalty > complaintPenaltyCap {
		return complaintPenaltyCap
	}
	return penalty
}

func missingDocsPenalty(missing bool) float64 {
	if missing {
		return missingDocsDeduction
	}
	return 0
}

// ComputeScore derives a deterministic score in [0, 100] from one metric and
// the vendor's category. Identical inputs always produce identical output.
func ComputeScore(metric *types.VendorMetric, category types.VendorCategory) float64 {
	delivery := metric.OnTimeDeliveryRate * deliveryWeight
	compliance := metric.ComplianceScore * complianceWeight

	reliability := reliabilityBase - complaintPenalty(metric.ComplaintCount)
	if reliability < 0 {
		reliability = 0
	}

	raw := delivery + compliance + reliability - missingDocsPenalty(metric.MissingDocuments)
	return ClampScore(raw * category.Weight())
}

// VendorFailure records one vendor that could not be recomputed during a
// sweep.
type VendorFailure struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Reason   string    `json:"reason"`
}

// RecomputeSummary is the partial-success report of a recompute sweep.
// Snapshots committed before a failure stay committed; Failed lists the
// vendors whose recompute did not produce one.
type RecomputeSummary struct {
	Processed int             `json:"processed_vendors"`
	Failed    []VendorFailure `json:"failed"`
}

type ScoringService interface {
	// RecomputeLatest recomputes the score from the vendor's newest metric
	// and appends a snapshot. Returns (nil, nil) when the vendor has no
	// metrics; that outcome is not an error.
	RecomputeLatest(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) (*types.VendorScore, error)
	// RecomputeVendor loads the vendor by id and recomputes its score.
	RecomputeVendor(ctx context.Context, vendorID uuid.UUID) (*types.Vendor, *types.VendorScore, error)
	// RecomputeAll sweeps every vendor sequentially, committing each
	// vendor's snapshot independently.
	RecomputeAll(ctx context.Context) (RecomputeSummary, error)
}

type scoringService struct {
	db         *gorm.DB
	log        *logger.Logger
	vendorRepo repos.VendorRepo
	metricRepo repos.MetricRepo
	scoreRepo  repos.ScoreRepo
}

func NewScoringService(db *gorm.DB, log *logger.Logger, vendorRepo repos.VendorRepo, metricRepo repos.MetricRepo, scoreRepo repos.ScoreRepo) ScoringService {
	serviceLog := log.With("service", "ScoringService")
	return &scoringService{
		db:         db,
		log:        serviceLog,
		vendorRepo: vendorRepo,
		metricRepo: metricRepo,
		scoreRepo:  scoreRepo,
	}
}

func (ss *scoringService) RecomputeLatest(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) (*types.VendorScore, error) {
	if tx != nil {
		return ss.recomputeLatest(ctx, tx, vendor)
	}

	var snapshot *types.VendorScore
	if err := ss.db.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		s, err := ss.recomputeLatest(ctx, inner, vendor)
		if err != nil {
			return err
		}
		snapshot = s
		return nil
	}); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (ss *scoringService) recomputeLatest(ctx context.Context, tx *gorm.DB, vendor *types.Vendor) (*types.VendorScore, error) {
	latest, err := ss.metricRepo.LatestByVendor(ctx, tx, vendor.ID)
	if err != nil {
		return nil, apierr.Storage("metric_fetch_failed", fmt.Errorf("fetch latest metric: %w", err))
	}
	if latest == nil {
		return nil, nil
	}

	value := ComputeScore(latest, vendor.Category)
	snapshot := &types.VendorScore{
		ID:           uuid.New(),
		VendorID:     vendor.ID,
		CalculatedAt: time.Now().UTC(),
		Score:        value,
	}
	if _, err := ss.scoreRepo.Append(ctx, tx, snapshot); err != nil {
		return nil, apierr.Storage("snapshot_append_failed", fmt.Errorf("append score snapshot: %w", err))
	}

	metrics.SnapshotsWritten.Inc()
	ss.log.Debug("Recorded score snapshot", "vendor_id", vendor.ID, "score", value)
	return snapshot, nil
}

func (ss *scoringService) RecomputeVendor(ctx context.Context, vendorID uuid.UUID) (*types.Vendor, *types.VendorScore, error) {
	vendor, err := ss.vendorRepo.GetByID(ctx, nil, vendorID)
	if err != nil {
		return nil, nil, apierr.Storage("vendor_fetch_failed", fmt.Errorf("fetch vendor: %w", err))
	}
	if vendor == nil {
		return nil, nil, apierr.NotFound("vendor_not_found", fmt.Errorf("vendor %s not found", vendorID))
	}

	snapshot, err := ss.RecomputeLatest(ctx, nil, vendor)
	if err != nil {
		return nil, nil, err
	}
	return vendor, snapshot, nil
}

func (ss *scoringService) RecomputeAll(ctx context.Context) (RecomputeSummary, error) {
	metrics.RecomputeSweeps.Inc()

	vendors, err := ss.vendorRepo.List(ctx, nil)
	if err != nil {
		return RecomputeSummary{}, apierr.Storage("vendor_list_failed", fmt.Errorf("list vendors: %w", err))
	}

	summary := RecomputeSummary{Failed: []VendorFailure{}}
	for _, vendor := range vendors {
		snapshot, err := ss.RecomputeLatest(ctx, nil, vendor)
		if err != nil {
			metrics.RecomputeFailures.Inc()
			ss.log.Warn("Vendor recompute failed during sweep", "vendor_id", vendor.ID, "error", err)
			summary.Failed = append(summary.Failed, VendorFailure{
				VendorID: vendor.ID,
				Reason:   apierr.Public(err).Error(),
			})
			continue
		}
		if snapshot != nil {
			summary.Processed++
		}
	}

	ss.log.Info("Recompute sweep finished", "processed", summary.Processed, "failed", len(summary.Failed))
	return summary, nil
}
