package domain

import (
	"time"

	"github.com/google/uuid"
)

// VendorScore is one immutable snapshot in a vendor's score history.
// Snapshots are append-only and written only by the recompute path.
type VendorScore struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID     uuid.UUID `gorm:"type:uuid;index;not null;column:vendor_id" json:"vendor_id"`
	CalculatedAt time.Time `gorm:"not null;column:calculated_at" json:"calculated_at"`
	Score        float64   `gorm:"not null" json:"score"`
}

func (VendorScore) TableName() string {
	return "vendor_scores"
}
