package postgres

import (
	"context"

	"academy/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// Every repository it hands out shares the same transaction handle.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// PurchaseRepo creates a purchase repository instance bound to the transaction.
func (f *gormRepositoryFactory) PurchaseRepo() repository.PurchaseRepository {
	return NewPurchaseRepository(f.tx)
}

// DeviceAccessRepo creates a device access repository instance bound to the transaction.
func (f *gormRepositoryFactory) DeviceAccessRepo() repository.DeviceAccessRepository {
	return NewDeviceAccessRepository(f.tx)
}

// RoleRepo creates a role assignment repository instance bound to the transaction.
func (f *gormRepositoryFactory) RoleRepo() repository.RoleAssignmentRepository {
	return NewRoleAssignmentRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
// GORM rolls back when fn returns an error or panics and commits otherwise.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
}
