package usecase

import (
	"context"
	"encoding/json"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceAccessChange describes a grant or block for a secondary device.
type DeviceAccessChange struct {
	Fingerprint string
	IsBlocked   bool
	Note        string
	DeviceInfo  json.RawMessage
}

// DeviceAdminUsecase is the administrative path over purchases and their device overrides.
type DeviceAdminUsecase interface {
	// GetPurchase retrieves a purchase.
	GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Purchase, error)

	// CreatePurchase seeds an entitlement outside the payment flow.
	CreatePurchase(ctx context.Context, email, courseID string, locked bool) (*entity.Purchase, error)

	// ListDevices lists the device overrides of a purchase.
	ListDevices(ctx context.Context, purchaseID uuid.UUID) ([]*entity.DeviceAccessEntry, error)

	// SetDeviceAccess grants or blocks a secondary device.
	SetDeviceAccess(ctx context.Context, purchaseID uuid.UUID, change *DeviceAccessChange) (*entity.DeviceAccessEntry, error)

	// RemoveDeviceAccess deletes a device override.
	RemoveDeviceAccess(ctx context.Context, purchaseID uuid.UUID, fingerprint string) error

	// SetDeviceLock toggles device binding enforcement.
	SetDeviceLock(ctx context.Context, purchaseID uuid.UUID, locked bool) (*entity.Purchase, error)

	// RegisterPrimaryDevice binds the primary device unless another one is already bound.
	RegisterPrimaryDevice(ctx context.Context, purchaseID uuid.UUID, fingerprint string, info json.RawMessage) (*entity.Purchase, error)

	// ResetDevices clears the primary device and all overrides.
	ResetDevices(ctx context.Context, purchaseID uuid.UUID) error
}
