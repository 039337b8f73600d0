package score

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

type ScoreRepo interface {
	Append(ctx context.Context, tx *gorm.DB, snapshot *types.VendorScore) (*types.VendorScore, error)
	LatestByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.VendorScore, error)
	ListByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID, limit, offset int) ([]*types.VendorScore, error)
}

type scoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScoreRepo(db *gorm.DB, baseLog *logger.Logger) ScoreRepo {
	repoLog := baseLog.With("repo", "ScoreRepo")
	return &scoreRepo{db: db, log: repoLog}
}

// Append always inserts a new snapshot row; history is never updated in place.
func (sr *scoreRepo) Append(ctx context.Context, tx *gorm.DB, snapshot *types.VendorScore) (*types.VendorScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if err := transaction.WithContext(ctx).Create(snapshot).Error; err != nil {
		return nil, err
	}
	return snapshot, nil
}

// LatestByVendor returns (nil, nil) when the vendor has no snapshots yet.
func (sr *scoreRepo) LatestByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID) (*types.VendorScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.VendorScore
	if err := transaction.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("calculated_at DESC").
		Order("id DESC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (sr *scoreRepo) ListByVendor(ctx context.Context, tx *gorm.DB, vendorID uuid.UUID, limit, offset int) ([]*types.VendorScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.VendorScore
	if err := transaction.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("calculated_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
