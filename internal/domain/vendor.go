package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vendor stores the identity and category of each vendor. Vendors are never
// deleted; name and category stay mutable after registration.
type Vendor struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"size:200;uniqueIndex;not null;column:name" json:"name"`
	Category  VendorCategory `gorm:"size:50;index;not null;column:category" json:"category"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}
