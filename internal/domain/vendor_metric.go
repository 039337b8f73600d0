package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VendorMetric stores every performance submission made for a vendor.
// Rows are immutable once written.
type VendorMetric struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID           uuid.UUID      `gorm:"type:uuid;index;not null;column:vendor_id" json:"vendor_id"`
	SubmittedAt        time.Time      `gorm:"not null;column:submitted_at" json:"submitted_at"`
	OnTimeDeliveryRate float64        `gorm:"not null" json:"on_time_delivery_rate"`
	ComplaintCount     int            `gorm:"not null" json:"complaint_count"`
	MissingDocuments   bool           `gorm:"not null" json:"missing_documents"`
	ComplianceScore    float64        `gorm:"not null" json:"compliance_score"`
	RawPayload         datatypes.JSON `json:"raw_payload"`
}

func (VendorMetric) TableName() string {
	return "vendor_metrics"
}
