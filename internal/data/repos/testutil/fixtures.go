package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
)

func SeedVendor(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, category types.VendorCategory) *types.Vendor {
	tb.Helper()
	now := time.Now().UTC()
	v := &types.Vendor{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed vendor: %v", err)
	}
	return v
}

func SeedMetric(tb testing.TB, ctx context.Context, tx *gorm.DB, vendorID uuid.UUID, submittedAt time.Time) *types.VendorMetric {
	tb.Helper()
	m := &types.VendorMetric{
		ID:                 uuid.New(),
		VendorID:           vendorID,
		SubmittedAt:        submittedAt,
		OnTimeDeliveryRate: 90,
		ComplaintCount:     0,
		MissingDocuments:   false,
		ComplianceScore:    90,
		RawPayload:         datatypes.JSON([]byte(`{}`)),
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed metric: %v", err)
	}
	return m
}

func SeedScore(tb testing.TB, ctx context.Context, tx *gorm.DB, vendorID uuid.UUID, value float64, calculatedAt time.Time) *types.VendorScore {
	tb.Helper()
	s := &types.VendorScore{
		ID:           uuid.New(),
		VendorID:     vendorID,
		CalculatedAt: calculatedAt,
		Score:        value,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed score: %v", err)
	}
	return s
}
