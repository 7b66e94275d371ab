// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for purchase persistence.
var (
	// ErrPurchaseNotFound is returned when no purchase matches the lookup key.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrDuplicatePurchase is returned when (email, course) already has a purchase.
	ErrDuplicatePurchase = errors.New("purchase already exists")
	// ErrFingerprintTaken is returned when a conditional primary device bind loses to an existing fingerprint.
	ErrFingerprintTaken = errors.New("purchase already bound to a device")
)

// PurchaseRepository defines the operations on purchase entitlements.
type PurchaseRepository interface {
	// FindByEmailAndCourse retrieves the purchase for one identity and course.
	FindByEmailAndCourse(ctx context.Context, email, courseID string) (*entity.Purchase, error)

	// FindByID retrieves a purchase by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)

	// Create persists a new purchase.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// SetDeviceLock toggles device binding enforcement.
	SetDeviceLock(ctx context.Context, id uuid.UUID, locked bool) error

	// BindDeviceIfUnset writes the primary fingerprint only when none is registered yet.
	// It returns ErrFingerprintTaken when another fingerprint is already bound.
	BindDeviceIfUnset(ctx context.Context, id uuid.UUID, fingerprint string, info json.RawMessage) error

	// ClearDevice removes the primary fingerprint and its snapshot.
	ClearDevice(ctx context.Context, id uuid.UUID) error
}
