package repository

import (
	"context"

	"academy/internal/domain/entity"
)

// RoleAssignmentRepository is the single store of staff role assignments.
type RoleAssignmentRepository interface {
	// FindRolesByEmail lists the roles granted to an email.
	FindRolesByEmail(ctx context.Context, email string) (entity.Roles, error)

	// ReplaceAll swaps the whole assignment table for the given set.
	ReplaceAll(ctx context.Context, assignments []entity.RoleAssignment) error
}
