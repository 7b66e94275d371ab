package postgres

import (
	"context"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const roleImportBatchSize = 500

// roleAssignmentRepository implements the repository.RoleAssignmentRepository interface.
type roleAssignmentRepository struct {
	db *gorm.DB
}

// NewRoleAssignmentRepository is the constructor for roleAssignmentRepository.
func NewRoleAssignmentRepository(db *gorm.DB) repository.RoleAssignmentRepository {
	return &roleAssignmentRepository{
		db: db,
	}
}

// FindRolesByEmail lists the roles granted to an email.
func (repo *roleAssignmentRepository) FindRolesByEmail(ctx context.Context, email string) (entity.Roles, error) {
	var roleNames []string

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RoleAssignmentModel{}).
		Where("email = ?", email).
		Order("role").
		Pluck("role", &roleNames).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find roles by email")
	}

	roles := make(entity.Roles, 0, len(roleNames))
	for _, name := range roleNames {
		roles = append(roles, entity.Role(name))
	}

	return roles, nil
}

// ReplaceAll deletes every assignment and inserts the given set.
// Callers run it inside a transaction so readers never see an empty table.
func (repo *roleAssignmentRepository) ReplaceAll(ctx context.Context, assignments []entity.RoleAssignment) error {
	db := repo.db.WithContext(ctx)

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.RoleAssignmentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear role assignments")
	}

	if len(assignments) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*model.RoleAssignmentModel, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, &model.RoleAssignmentModel{
			Email:     a.Email,
			Role:      a.Role.String(),
			CreatedAt: now,
		})
	}

	if err := db.CreateInBatches(rows, roleImportBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("duplicate role assignment")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert role assignments")
	}

	return nil
}
