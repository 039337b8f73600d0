package metric

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

type MetricRepo interface {
	Create(ctx context.Context, tx *gorm.DB, metric *types.VendorMetric) (*types.VendorMetric, error)
	LatestByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.VendorMetric, error)
	ListByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) ([]*types.VendorMetric, error)
}

type metricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricRepo(db *gorm.DB, baseLog *logger.Logger) MetricRepo {
	repoLog := baseLog.With("repo", "MetricRepo")
	return &metricRepo{db: db, log: repoLog}
}

func (mr *metricRepo) Create(ctx context.Context, tx *gorm.DB, metric *types.VendorMetric) (*types.VendorMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if err := transaction.WithContext(ctx).Create(metric).Error; err != nil {
		return nil, err
	}
	return metric, nil
}

// LatestByVendor returns the newest metric for a vendor, ties on submitted_at
// broken by id descending so the selection is a deterministic total order.
// Returns (nil, nil) when the vendor has no metrics.
func (mr *metricRepo) LatestByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.VendorMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var result types.VendorMetric
	if err := transaction.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("submitted_at DESC").
		Order("id DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (mr *metricRepo) ListByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) ([]*types.VendorMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.VendorMetric
	if err := transaction.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("submitted_at DESC").
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
