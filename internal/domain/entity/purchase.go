// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Purchase is one entitlement of one identity to one course.
// At most one Purchase exists per (Email, CourseID).
type Purchase struct {
	ID                uuid.UUID       `json:"id"`
	Email             string          `json:"email"`             // Normalized purchaser email.
	CourseID          string          `json:"courseId"`          // Purchased content.
	IsDeviceLocked    bool            `json:"isDeviceLocked"`    // Whether device binding is enforced.
	DeviceFingerprint *string         `json:"deviceFingerprint"` // Primary device, nil until first bind.
	DeviceInfo        json.RawMessage `json:"deviceInfo"`        // Opaque snapshot of the primary device.
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// HasRegisteredDevice reports whether a primary device fingerprint is bound.
func (p *Purchase) HasRegisteredDevice() bool {
	return p.DeviceFingerprint != nil && *p.DeviceFingerprint != ""
}

// IsRegisteredDevice reports whether fingerprint is the primary device.
// An empty fingerprint never matches.
func (p *Purchase) IsRegisteredDevice(fingerprint string) bool {
	if fingerprint == "" || !p.HasRegisteredDevice() {
		return false
	}

	return *p.DeviceFingerprint == fingerprint
}

// NormalizeEmail canonicalizes an identity email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
