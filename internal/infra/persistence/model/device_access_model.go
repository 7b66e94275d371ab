package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeviceAccessEntryModel is the GORM-specific struct for the 'device_access_entries' table.
// It holds the per-device overrides an administrator grants or blocks for a purchase.
type DeviceAccessEntryModel struct {
	PurchaseID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DeviceFingerprint string         `gorm:"type:varchar(128);primaryKey"`
	IsBlocked         bool           `gorm:"not null;default:false"`
	DeviceInfo        datatypes.JSON `gorm:"type:jsonb"`
	Note              string         `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceAccessEntryModel) TableName() string {
	return "device_access_entries"
}
