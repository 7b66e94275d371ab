package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// DeviceAccessUsecase answers whether a device may stream purchased content.
type DeviceAccessUsecase interface {
	// Validate evaluates the device access decision for an identity, course and candidate fingerprint.
	// Denials are returned as decisions; only store failures are errors.
	Validate(ctx context.Context, email, courseID, fingerprint string) (*entity.AccessDecision, error)
}
