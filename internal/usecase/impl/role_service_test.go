package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoleService_HasRole(t *testing.T) {
	roleRepo := mockRepo.NewMockRoleAssignmentRepository(t)
	service := NewRoleService(roleRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()

	roleRepo.EXPECT().
		FindRolesByEmail(ctx, "admin@x.com").
		Return(entity.Roles{entity.RoleAdmin, entity.RoleTeacher}, nil).
		Twice()

	ok, err := service.HasRole(ctx, "Admin@X.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.HasRole(ctx, "admin@x.com", entity.RoleInstructor)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoleService_HasRole_UnknownRoleSkipsLookup(t *testing.T) {
	service := NewRoleService(mockRepo.NewMockRoleAssignmentRepository(t), mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	ok, err := service.HasRole(context.Background(), "admin@x.com", entity.Role("owner"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoleService_RolesOf_StoreFailure(t *testing.T) {
	roleRepo := mockRepo.NewMockRoleAssignmentRepository(t)
	service := NewRoleService(roleRepo, mockRepo.NewMockTransactionManager(t), newDiscardLogger())
	ctx := context.Background()
	storeErr := errors.New("timeout")

	roleRepo.EXPECT().FindRolesByEmail(ctx, "a@x.com").Return(nil, storeErr)

	_, err := service.RolesOf(ctx, "a@x.com")
	assert.ErrorIs(t, err, storeErr)
}

func TestRoleService_Import_ReplacesInTransaction(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRoleService(mockRepo.NewMockRoleAssignmentRepository(t), txManager, newDiscardLogger())
	ctx := context.Background()

	want := []entity.RoleAssignment{
		{Email: "teacher@x.com", Role: entity.RoleTeacher},
		{Email: "admin@x.com", Role: entity.RoleAdmin},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRoleRepo := mockRepo.NewMockRoleAssignmentRepository(t)

			mockFactory.EXPECT().RoleRepo().Return(mockRoleRepo)
			mockRoleRepo.EXPECT().ReplaceAll(ctx, want).Return(nil)

			return fn(mockFactory)
		})

	err := service.Import(ctx, []entity.RoleAssignment{
		{Email: " Teacher@x.com", Role: entity.RoleTeacher},
		{Email: "admin@x.com", Role: entity.RoleAdmin},
		{Email: "ADMIN@x.com", Role: entity.RoleAdmin},
	})
	require.NoError(t, err)
}

func TestRoleService_Import_RejectsUnknownRole(t *testing.T) {
	service := NewRoleService(mockRepo.NewMockRoleAssignmentRepository(t), mockRepo.NewMockTransactionManager(t), newDiscardLogger())

	err := service.Import(context.Background(), []entity.RoleAssignment{{Email: "a@x.com", Role: "owner"}})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_ROLE", appErr.ErrorCode())
}
