package repository

import (
	"context"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceAccessEntryNotFound is returned when no override exists for a (purchase, fingerprint) pair.
var ErrDeviceAccessEntryNotFound = errors.New("device access entry not found")

// DeviceAccessRepository defines the operations on per-device overrides.
type DeviceAccessRepository interface {
	// FindEntry retrieves the override for a purchase and fingerprint.
	FindEntry(ctx context.Context, purchaseID uuid.UUID, fingerprint string) (*entity.DeviceAccessEntry, error)

	// ListByPurchase retrieves all overrides of a purchase.
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*entity.DeviceAccessEntry, error)

	// Upsert creates the override or updates its blocked flag and note.
	Upsert(ctx context.Context, entry *entity.DeviceAccessEntry) error

	// Delete removes one override.
	Delete(ctx context.Context, purchaseID uuid.UUID, fingerprint string) error

	// DeleteByPurchase removes all overrides of a purchase and returns how many were removed.
	DeleteByPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error)
}
