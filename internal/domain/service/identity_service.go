package service

import (
	"time"

	"academy/internal/domain/entity"
)

// IdentityVerifier resolves the caller from a bearer token issued by the hosted auth provider.
type IdentityVerifier interface {
	// Verify validates the token and returns the identity it names.
	Verify(token string) (*entity.Identity, error)

	// Issue mints a token for local development and operator tooling.
	Issue(identity *entity.Identity, ttl time.Duration) (string, error)
}
