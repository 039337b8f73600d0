package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos"
	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/apierr"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

const (
	maxVendorNameLen = 200

	defaultScoreLimit = 10
	maxScoreLimit     = 100
)

// VendorDetail pairs a vendor with its most recent score snapshot, nil when
// no snapshot exists yet.
type VendorDetail struct {
	Vendor      *types.Vendor
	LatestScore *types.VendorScore
}

// VendorPatch carries the optional fields of a vendor update; nil fields are
// left untouched.
type VendorPatch struct {
	Name     *string
	Category *types.VendorCategory
}

type VendorService interface {
	Register(ctx context.Context, name string, category types.VendorCategory) (*types.Vendor, error)
	Update(ctx context.Context, vendorID uuid.UUID, patch VendorPatch) (*VendorDetail, error)
	Get(ctx context.Context, vendorID uuid.UUID) (*VendorDetail, error)
	List(ctx context.Context) ([]*VendorDetail, error)
	Scores(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*types.VendorScore, error)
}

type vendorService struct {
	db         *gorm.DB
	log        *logger.Logger
	vendorRepo repos.VendorRepo
	scoreRepo  repos.ScoreRepo
}

func NewVendorService(db *gorm.DB, log *logger.Logger, vendorRepo repos.VendorRepo, scoreRepo repos.ScoreRepo) VendorService {
	serviceLog := log.With("service", "VendorService")
	return &vendorService{
		db:         db,
		log:        serviceLog,
		vendorRepo: vendorRepo,
		scoreRepo:  scoreRepo,
	}
}

func validateVendorName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apierr.Validation("invalid_vendor_name", fmt.Errorf("vendor name must not be empty"))
	}
	if len(name) > maxVendorNameLen {
		return apierr.Validation("invalid_vendor_name", fmt.Errorf("vendor name must be at most %d characters", maxVendorNameLen))
	}
	return nil
}

func (vs *vendorService) Register(ctx context.Context, name string, category types.VendorCategory) (*types.Vendor, error) {
	if err := validateVendorName(name); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, apierr.Validation("invalid_vendor_category", fmt.Errorf("unknown vendor category %q", category))
	}

	var created *types.Vendor
	if err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := vs.vendorRepo.NameExists(ctx, tx, name)
		if err != nil {
			return apierr.Storage("vendor_lookup_failed", fmt.Errorf("check vendor name: %w", err))
		}
		if exists {
			return apierr.Conflict("vendor_already_exists", fmt.Errorf("vendor %q already exists", name))
		}

		now := time.Now().UTC()
		vendor := &types.Vendor{
			ID:        uuid.New(),
			Name:      name,
			Category:  category,
			CreatedAt: now,
			UpdatedAt: now,
		}
		// NameExists then Create is not atomic; the unique index is the
		// backstop when a concurrent registration wins the race.
		if _, err := vs.vendorRepo.Create(ctx, tx, vendor); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apierr.Conflict("vendor_already_exists", fmt.Errorf("vendor %q already exists", name))
			}
			return apierr.Storage("vendor_create_failed", fmt.Errorf("create vendor: %w", err))
		}
		created = vendor
		return nil
	}); err != nil {
		return nil, err
	}

	vs.log.Info("Registered vendor", "vendor_id", created.ID, "category", created.Category)
	return created, nil
}

// Update applies only the provided fields. The read-modify-write carries no
// version token, so concurrent updates resolve last-committed-wins; that is
// accepted behavior for this domain.
func (vs *vendorService) Update(ctx context.Context, vendorID uuid.UUID, patch VendorPatch) (*VendorDetail, error) {
	if patch.Name != nil {
		if err := validateVendorName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, apierr.Validation("invalid_vendor_category", fmt.Errorf("unknown vendor category %q", *patch.Category))
	}

	var updated *VendorDetail
	if err := vs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vendor, err := vs.vendorRepo.GetByID(ctx, tx, vendorID)
		if err != nil {
			return apierr.Storage("vendor_fetch_failed", fmt.Errorf("fetch vendor: %w", err))
		}
		if vendor == nil {
			return apierr.NotFound("vendor_not_found", fmt.Errorf("vendor %s not found", vendorID))
		}

		fields := map[string]any{}
		if patch.Name != nil && *patch.Name != vendor.Name {
			exists, err := vs.vendorRepo.NameExists(ctx, tx, *patch.Name)
			if err != nil {
				return apierr.Storage("vendor_lookup_failed", fmt.Errorf("check vendor name: %w", err))
			}
			if exists {
				return apierr.Conflict("vendor_already_exists", fmt.Errorf("vendor %q already exists", *patch.Name))
			}
			fields["name"] = *patch.Name
			vendor.Name = *patch.Name
		}
		if patch.Category != nil {
			fields["category"] = string(*patch.Category)
			vendor.Category = *patch.Category
		}
		if len(fields) > 0 {
			now := time.Now().UTC()
			fields["updated_at"] = now
			vendor.UpdatedAt = now
			if err := vs.vendorRepo.Update(ctx, tx, vendorID, fields); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apierr.Conflict("vendor_already_exists", fmt.Errorf("vendor %q already exists", vendor.Name))
				}
				return apierr.Storage("vendor_update_failed", fmt.Errorf("update vendor: %w", err))
			}
		}

		latest, err := vs.scoreRepo.LatestByVendor(ctx, tx, vendorID)
		if err != nil {
			return apierr.Storage("score_fetch_failed", fmt.Errorf("fetch latest score: %w", err))
		}
		updated = &VendorDetail{Vendor: vendor, LatestScore: latest}
		return nil
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (vs *vendorService) Get(ctx context.Context, vendorID uuid.UUID) (*VendorDetail, error) {
	vendor, err := vs.vendorRepo.GetByID(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Storage("vendor_fetch_failed", fmt.Errorf("fetch vendor: %w", err))
	}
	if vendor == nil {
		return nil, apierr.NotFound("vendor_not_found", fmt.Errorf("vendor %s not found", vendorID))
	}

	latest, err := vs.scoreRepo.LatestByVendor(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Storage("score_fetch_failed", fmt.Errorf("fetch latest score: %w", err))
	}
	return &VendorDetail{Vendor: vendor, LatestScore: latest}, nil
}

func (vs *vendorService) List(ctx context.Context) ([]*VendorDetail, error) {
	vendors, err := vs.vendorRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Storage("vendor_list_failed", fmt.Errorf("list vendors: %w", err))
	}

	details := make([]*VendorDetail, 0, len(vendors))
	for _, vendor := range vendors {
		latest, err := vs.scoreRepo.LatestByVendor(ctx, nil, vendor.ID)
		if err != nil {
			return nil, apierr.Storage("score_fetch_failed", fmt.Errorf("fetch latest score: %w", err))
		}
		details = append(details, &VendorDetail{Vendor: vendor, LatestScore: latest})
	}
	return details, nil
}

func (vs *vendorService) Scores(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*types.VendorScore, error) {
	vendor, err := vs.vendorRepo.GetByID(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Storage("vendor_fetch_failed", fmt.Errorf("fetch vendor: %w", err))
	}
	if vendor == nil {
		return nil, apierr.NotFound("vendor_not_found", fmt.Errorf("vendor %s not found", vendorID))
	}

	if limit <= 0 {
		limit = defaultScoreLimit
	}
	if limit > maxScoreLimit {
		limit = maxScoreLimit
	}
	if offset < 0 {
		offset = 0
	}

	scores, err := vs.scoreRepo.ListByVendor(ctx, nil, vendorID, limit, offset)
	if err != nil {
		return nil, apierr.Storage("score_list_failed", fmt.Errorf("list scores: %w", err))
	}
	return scores, nil
}
