package usecase

import (
	"academy/internal/domain/fingerprint"
)

// FingerprintUsecase derives device fingerprints from environment snapshots.
type FingerprintUsecase interface {
	// Generate computes the fingerprint of a snapshot with the configured schema.
	Generate(env *fingerprint.Environment) (*fingerprint.Result, error)
}
