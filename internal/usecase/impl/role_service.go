package impl

import (
	"context"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

// roleService is the one lookup service over the role assignment table.
type roleService struct {
	roleRepo  repository.RoleAssignmentRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(
	roleRepo repository.RoleAssignmentRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RoleUsecase {
	return &roleService{
		roleRepo:  roleRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HasRole reports whether email holds role.
func (srv *roleService) HasRole(ctx context.Context, email string, role entity.Role) (bool, error) {
	if !role.IsValid() {
		return false, nil
	}

	roles, err := srv.RolesOf(ctx, email)
	if err != nil {
		return false, err
	}

	return roles.Contains(role), nil
}

// RolesOf lists the roles of email.
func (srv *roleService) RolesOf(ctx context.Context, email string) (entity.Roles, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return entity.Roles{}, nil
	}

	roles, err := srv.roleRepo.FindRolesByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find roles by email")
	}

	return roles, nil
}

// Import replaces every assignment with the given set in one transaction.
func (srv *roleService) Import(ctx context.Context, assignments []entity.RoleAssignment) error {
	normalized, err := normalizeAssignments(assignments)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RoleRepo().ReplaceAll(ctx, normalized)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to import role assignments", slog.Any("error", err))

		return errors.Wrap(err, "failed to import role assignments")
	}

	srv.log(ctx).Info("Imported role assignments", slog.Int("count", len(normalized)))

	return nil
}

// normalizeAssignments lower-cases emails, rejects unknown roles and drops duplicates.
func normalizeAssignments(assignments []entity.RoleAssignment) ([]entity.RoleAssignment, error) {
	seen := make(map[entity.RoleAssignment]struct{}, len(assignments))
	result := make([]entity.RoleAssignment, 0, len(assignments))

	for _, a := range assignments {
		key := entity.RoleAssignment{Email: entity.NormalizeEmail(a.Email), Role: a.Role}
		if key.Email == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("role assignment without email")
		}
		if !key.Role.IsValid() {
			return nil, domainerrors.ErrInvalidRole.WithDetails(string(a.Role))
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}

	return result, nil
}
