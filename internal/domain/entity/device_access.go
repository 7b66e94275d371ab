package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxFingerprintLength bounds stored fingerprints; it matches the varchar(128) columns.
const MaxFingerprintLength = 128

// DeviceAccessEntry is an explicit allow or deny override for a (purchase, fingerprint) pair,
// distinct from the primary fingerprint stored on the Purchase.
type DeviceAccessEntry struct {
	PurchaseID        uuid.UUID       `json:"purchaseId"`
	DeviceFingerprint string          `json:"deviceFingerprint"`
	IsBlocked         bool            `json:"isBlocked"`
	DeviceInfo        json.RawMessage `json:"deviceInfo,omitempty"`
	Note              string          `json:"note,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// Allows reports whether the entry grants access.
func (e *DeviceAccessEntry) Allows() bool {
	return e != nil && !e.IsBlocked
}
