package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	types "github.com/vendorpulse/vendorpulse-backend/internal/domain"
	"github.com/vendorpulse/vendorpulse-backend/internal/services"
)

// VendorView is the boundary representation of a vendor, including the most
// recent score (null until a snapshot exists).
type VendorView struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Category    types.VendorCategory `json:"category"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	LatestScore *float64             `json:"latest_score"`
}

type VendorListView struct {
	Items []VendorView `json:"items"`
	Count int          `json:"count"`
}

type MetricView struct {
	ID                 uuid.UUID       `json:"id"`
	VendorID           uuid.UUID       `json:"vendor_id"`
	SubmittedAt        time.Time       `json:"submitted_at"`
	OnTimeDeliveryRate float64         `json:"on_time_delivery_rate"`
	ComplaintCount     int             `json:"complaint_count"`
	MissingDocuments   bool            `json:"missing_documents"`
	ComplianceScore    float64         `json:"compliance_score"`
	RawPayload         json.RawMessage `json:"raw_payload"`
}

type ScoreView struct {
	ID           uuid.UUID `json:"id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	CalculatedAt time.Time `json:"calculated_at"`
	Score        float64   `json:"score"`
}

func newVendorView(vendor *types.Vendor, latest *types.VendorScore) VendorView {
	view := VendorView{
		ID:        vendor.ID,
		Name:      vendor.Name,
		Category:  vendor.Category,
		CreatedAt: vendor.CreatedAt,
		UpdatedAt: vendor.UpdatedAt,
	}
	if latest != nil {
		value := latest.Score
		view.LatestScore = &value
	}
	return view
}

func newVendorDetailView(detail *services.VendorDetail) VendorView {
	return newVendorView(detail.Vendor, detail.LatestScore)
}

func newMetricView(metric *types.VendorMetric) MetricView {
	return MetricView{
		ID:                 metric.ID,
		VendorID:           metric.VendorID,
		SubmittedAt:        metric.SubmittedAt,
		OnTimeDeliveryRate: metric.OnTimeDeliveryRate,
		ComplaintCount:     metric.ComplaintCount,
		MissingDocuments:   metric.MissingDocuments,
		ComplianceScore:    metric.ComplianceScore,
		RawPayload:         json.RawMessage(metric.RawPayload),
	}
}

func newScoreView(score *types.VendorScore) ScoreView {
	return ScoreView{
		ID:           score.ID,
		VendorID:     score.VendorID,
		CalculatedAt: score.CalculatedAt,
		Score:        score.Score,
	}
}

func newScoreViews(scores []*types.VendorScore) []ScoreView {
	views := make([]ScoreView, 0, len(scores))
	for _, s := range scores {
		views = append(views, newScoreView(s))
	}
	return views
}
