package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos"
	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/observability/metrics"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/apierr"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/logger"
)

// MetricInput is one performance submission for a vendor. RawPayload is kept
// verbatim for audit; when absent it defaults to a serialization of the typed
// fields.
type MetricInput struct {
	SubmittedAt        time.Time
	OnTimeDeliveryRate float64
	ComplaintCount     int
	MissingDocuments   bool
	ComplianceScore    float64
	RawPayload         json.RawMessage
}

func (in MetricInput) validate() error {
	if in.SubmittedAt.IsZero() {
		return apierr.Validation("invalid_metric_timestamp", fmt.Errorf("submission timestamp is required"))
	}
	if in.OnTimeDeliveryRate < 0 || in.OnTimeDeliveryRate > 100 {
		return apierr.Validation("invalid_metric_delivery_rate", fmt.Errorf("on-time delivery rate must be within [0, 100]"))
	}
	if in.ComplaintCount < 0 {
		return apierr.Validation("invalid_metric_complaint_count", fmt.Errorf("complaint count must not be negative"))
	}
	if in.ComplianceScore < 0 || in.ComplianceScore > 100 {
		return apierr.Validation("invalid_metric_compliance_score", fmt.Errorf("compliance score must be within [0, 100]"))
	}
	return nil
}

// submittedFields is the audit serialization used when a submission carries
// no raw payload of its own.
type submittedFields struct {
	SubmittedAt        time.Time `json:"submitted_at"`
	OnTimeDeliveryRate float64   `json:"on_time_delivery_rate"`
	ComplaintCount     int       `json:"complaint_count"`
	MissingDocuments   bool      `json:"missing_documents"`
	ComplianceScore    float64   `json:"compliance_score"`
}

type MetricService interface {
	// Submit persists the metric and synchronously recomputes the vendor's
	// score so the exposed current score reflects this submission.
	Submit(ctx context.Context, vendorID uuid.UUID, input MetricInput) (*types.VendorMetric, *types.VendorScore, error)
}

type metricService struct {
	db         *gorm.DB
	log        *logger.Logger
	vendorRepo repos.VendorRepo
	metricRepo repos.MetricRepo
	scoring    ScoringService
}

func NewMetricService(db *gorm.DB, log *logger.Logger, vendorRepo repos.VendorRepo, metricRepo repos.MetricRepo, scoring ScoringService) MetricService {
	serviceLog := log.With("service", "MetricService")
	return &metricService{
		db:         db,
		log:        serviceLog,
		vendorRepo: vendorRepo,
		metricRepo: metricRepo,
		scoring:    scoring,
	}
}

func (ms *metricService) Submit(ctx context.Context, vendorID uuid.UUID, input MetricInput) (*types.VendorMetric, *types.VendorScore, error) {
	if err := input.validate(); err != nil {
		return nil, nil, err
	}

	var (
		created  *types.VendorMetric
		snapshot *types.VendorScore
	)
	if err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vendor, err := ms.vendorRepo.GetByID(ctx, tx, vendorID)
		if err != nil {
			return apierr.Storage("vendor_fetch_failed", fmt.Errorf("fetch vendor: %w", err))
		}
		if vendor == nil {
			return apierr.NotFound("vendor_not_found", fmt.Errorf("vendor %s not found", vendorID))
		}

		metric := &types.VendorMetric{
			ID:                 uuid.New(),
			VendorID:           vendor.ID,
			SubmittedAt:        input.SubmittedAt,
			OnTimeDeliveryRate: input.OnTimeDeliveryRate,
			ComplaintCount:     input.ComplaintCount,
			MissingDocuments:   input.MissingDocuments,
			ComplianceScore:    input.ComplianceScore,
		}

		payload := input.RawPayload
		if len(payload) == 0 {
			payload, err = json.Marshal(submittedFields{
				SubmittedAt:        input.SubmittedAt,
				OnTimeDeliveryRate: input.OnTimeDeliveryRate,
				ComplaintCount:     input.ComplaintCount,
				MissingDocuments:   input.MissingDocuments,
				ComplianceScore:    input.ComplianceScore,
			})
			if err != nil {
				return apierr.Storage("metric_payload_failed", fmt.Errorf("serialize metric payload: %w", err))
			}
		}
		metric.RawPayload = datatypes.JSON(payload)

		if _, err := ms.metricRepo.Create(ctx, tx, metric); err != nil {
			return apierr.Storage("metric_create_failed", fmt.Errorf("create metric: %w", err))
		}

		snap, err := ms.scoring.RecomputeLatest(ctx, tx, vendor)
		if err != nil {
			return err
		}

		created = metric
		snapshot = snap
		return nil
	}); err != nil {
		return nil, nil, err
	}

	metrics.MetricSubmissions.Inc()
	ms.log.Debug("Accepted metric submission", "vendor_id", vendorID, "metric_id", created.ID)
	return created, snapshot, nil
}
