package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// RoleUsecase is the single lookup service for staff roles.
type RoleUsecase interface {
	// HasRole reports whether email holds role.
	HasRole(ctx context.Context, email string, role entity.Role) (bool, error)

	// RolesOf lists the roles of email.
	RolesOf(ctx context.Context, email string) (entity.Roles, error)

	// Import replaces every assignment with the given set.
	Import(ctx context.Context, assignments []entity.RoleAssignment) error
}
