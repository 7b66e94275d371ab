package entity

import "encoding/json"

// Denial reasons returned to clients. They are part of the public response contract.
const (
	ReasonNoPurchase          = "no purchase found"
	ReasonDeviceNotAuthorized = "device not authorized"
)

// RegisteredDevice describes the device a locked purchase is bound to.
type RegisteredDevice struct {
	Fingerprint *string         `json:"fingerprint"`
	Info        json.RawMessage `json:"info"`
}

// AccessDecision is the outcome of a device access evaluation.
// Denials are normal values, not errors.
type AccessDecision struct {
	HasAccess        bool              `json:"hasAccess"`
	Reason           string            `json:"reason,omitempty"`
	RegisteredDevice *RegisteredDevice `json:"registeredDevice,omitempty"`
}

// Granted returns an allowing decision.
func Granted() *AccessDecision {
	return &AccessDecision{HasAccess: true}
}

// DeniedNoPurchase returns the decision for an identity without an entitlement.
func DeniedNoPurchase() *AccessDecision {
	return &AccessDecision{Reason: ReasonNoPurchase}
}

// DeniedDevice returns the decision for an unrecognized device on a locked purchase.
func DeniedDevice(purchase *Purchase) *AccessDecision {
	info := purchase.DeviceInfo
	if len(info) == 0 {
		info = json.RawMessage("null")
	}

	return &AccessDecision{
		Reason: ReasonDeviceNotAuthorized,
		RegisteredDevice: &RegisteredDevice{
			Fingerprint: purchase.DeviceFingerprint,
			Info:        info,
		},
	}
}

// Outcome is a short label for metrics and logs.
func (d *AccessDecision) Outcome() string {
	switch {
	case d.HasAccess:
		return "granted"
	case d.Reason == ReasonNoPurchase:
		return "no_purchase"
	default:
		return "device_denied"
	}
}
