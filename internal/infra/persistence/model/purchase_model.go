package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PurchaseModel is the GORM-specific struct for the 'purchases' table.
// One row per (email, course) entitlement.
type PurchaseModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key"`
	Email             string         `gorm:"type:varchar(320);not null;uniqueIndex:idx_purchases_email_course"`
	CourseID          string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_purchases_email_course"`
	IsDeviceLocked    bool           `gorm:"not null;default:true"`
	DeviceFingerprint *string        `gorm:"type:varchar(128)"`
	DeviceInfo        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	DeviceAccessEntries []DeviceAccessEntryModel `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
