package services

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vendorpulse/vendorpulse-backend/internal/data/repos/testutil"
	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/platform/apierr"
)

func TestSubmitReadYourWrites(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)

	metric, snapshot, err := deps.metrics.Submit(ctx, vendor.ID, MetricInput{
		SubmittedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		OnTimeDeliveryRate: 92.5,
		ComplaintCount:     1,
		MissingDocuments:   false,
		ComplianceScore:    88,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if metric == nil || snapshot == nil {
		t.Fatalf("Submit: expected both metric and snapshot, got %v / %v", metric, snapshot)
	}
	if want := 90.575; math.Abs(snapshot.Score-want) > 1e-9 {
		t.Fatalf("Submit: snapshot score=%v, want %v", snapshot.Score, want)
	}

	// The score exposed through the vendor view must already reflect the
	// submission that just returned.
	detail, err := deps.vendors.Get(ctx, vendor.ID)
	if err != nil {
		t.Fatalf("Get after submit: %v", err)
	}
	if detail.LatestScore == nil || detail.LatestScore.ID != snapshot.ID {
		t.Fatalf("Get after submit: latest score %+v, want snapshot %s", detail.LatestScore, snapshot.ID)
	}

	history, err := deps.vendors.Scores(ctx, vendor.ID, 10, 0)
	if err != nil {
		t.Fatalf("Scores after submit: %v", err)
	}
	if len(history) != 1 || history[0].ID != snapshot.ID {
		t.Fatalf("Scores after submit: got %d entries", len(history))
	}
}

func TestSubmitDefaultsRawPayload(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)

	metric, _, err := deps.metrics.Submit(ctx, vendor.ID, MetricInput{
		SubmittedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		OnTimeDeliveryRate: 80,
		ComplaintCount:     1,
		MissingDocuments:   true,
		ComplianceScore:    70,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(metric.RawPayload, &payload); err != nil {
		t.Fatalf("unmarshal defaulted payload: %v", err)
	}
	if payload["on_time_delivery_rate"] != 80.0 {
		t.Fatalf("defaulted payload delivery rate=%v, want 80", payload["on_time_delivery_rate"])
	}
	if payload["missing_documents"] != true {
		t.Fatalf("defaulted payload missing_documents=%v, want true", payload["missing_documents"])
	}
	if _, ok := payload["raw_payload"]; ok {
		t.Fatalf("defaulted payload must not embed a raw_payload field")
	}
}

func TestSubmitKeepsRawPayloadVerbatim(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)
	raw := json.RawMessage(`{"source":"edi-bridge","batch":42}`)

	metric, _, err := deps.metrics.Submit(ctx, vendor.ID, MetricInput{
		SubmittedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		OnTimeDeliveryRate: 80,
		ComplianceScore:    70,
		RawPayload:         raw,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if string(metric.RawPayload) != string(raw) {
		t.Fatalf("raw payload altered: %s", metric.RawPayload)
	}
}

func TestSubmitUnknownVendor(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	_, _, err := deps.metrics.Submit(ctx, uuid.New(), MetricInput{
		SubmittedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		OnTimeDeliveryRate: 80,
		ComplianceScore:    70,
	})
	if apierr.KindOf(err) != apierr.KindNotFound {
		t.Fatalf("Submit unknown vendor: kind=%s, want %s", apierr.KindOf(err), apierr.KindNotFound)
	}
}

func TestSubmitValidation(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	vendor := testutil.SeedVendor(t, ctx, deps.db, "Acme Metals", types.CategorySupplier)
	submitted := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input MetricInput
	}{
		{
			name:  "missing_timestamp",
			input: MetricInput{OnTimeDeliveryRate: 80, ComplianceScore: 70},
		},
		{
			name:  "delivery_rate_above_range",
			input: MetricInput{SubmittedAt: submitted, OnTimeDeliveryRate: 100.5, ComplianceScore: 70},
		},
		{
			name:  "delivery_rate_below_range",
			input: MetricInput{SubmittedAt: submitted, OnTimeDeliveryRate: -1, ComplianceScore: 70},
		},
		{
			name:  "negative_complaints",
			input: MetricInput{SubmittedAt: submitted, OnTimeDeliveryRate: 80, ComplaintCount: -1, ComplianceScore: 70},
		},
		{
			name:  "compliance_above_range",
			input: MetricInput{SubmittedAt: submitted, OnTimeDeliveryRate: 80, ComplianceScore: 101},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := deps.metrics.Submit(ctx, vendor.ID, tc.input)
			if apierr.KindOf(err) != apierr.KindValidation {
				t.Fatalf("Submit: kind=%s, want %s", apierr.KindOf(err), apierr.KindValidation)
			}
		})
	}

	// A rejected submission must leave no trace.
	var count int64
	if err := deps.db.WithContext(ctx).Model(&types.VendorMetric{}).Where("vendor_id = ?", vendor.ID).Count(&count).Error; err != nil {
		t.Fatalf("count metrics: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected submissions persisted %d metrics", count)
	}
}
