package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deviceAccessRepository implements the repository.DeviceAccessRepository interface.
type deviceAccessRepository struct {
	db *gorm.DB
}

// NewDeviceAccessRepository is the constructor for deviceAccessRepository.
func NewDeviceAccessRepository(db *gorm.DB) repository.DeviceAccessRepository {
	return &deviceAccessRepository{
		db: db,
	}
}

// FindEntry retrieves the override for a purchase and fingerprint.
func (repo *deviceAccessRepository) FindEntry(ctx context.Context, purchaseID uuid.UUID, fingerprint string) (*entity.DeviceAccessEntry, error) {
	var entryM model.DeviceAccessEntryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("purchase_id = ? AND device_fingerprint = ?", purchaseID, fingerprint).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceAccessEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find device access entry")
	}

	return toDeviceAccessDomain(&entryM), nil
}

// ListByPurchase retrieves all overrides of a purchase, newest first.
func (repo *deviceAccessRepository) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]*entity.DeviceAccessEntry, error) {
	var entryModels []*model.DeviceAccessEntryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("purchase_id = ?", purchaseID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list device access entries")
	}

	entries := make([]*entity.DeviceAccessEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toDeviceAccessDomain(entryM))
	}

	return entries, nil
}

// Upsert creates the override or updates an existing one in place.
func (repo *deviceAccessRepository) Upsert(ctx context.Context, entry *entity.DeviceAccessEntry) error {
	entryM := fromDeviceAccessDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "purchase_id"}, {Name: "device_fingerprint"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_blocked", "device_info", "note", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPurchaseNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device access entry")
	}

	return nil
}

// Delete removes one override.
func (repo *deviceAccessRepository) Delete(ctx context.Context, purchaseID uuid.UUID, fingerprint string) error {
	result := repo.db.WithContext(ctx).
		Where("purchase_id = ? AND device_fingerprint = ?", purchaseID, fingerprint).
		Delete(&model.DeviceAccessEntryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device access entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceAccessEntryNotFound
	}

	return nil
}

// DeleteByPurchase removes all overrides of a purchase.
func (repo *deviceAccessRepository) DeleteByPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Delete(&model.DeviceAccessEntryModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device access entries")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toDeviceAccessDomain(data *model.DeviceAccessEntryModel) *entity.DeviceAccessEntry {
	if data == nil {
		return nil
	}

	return &entity.DeviceAccessEntry{
		PurchaseID:        data.PurchaseID,
		DeviceFingerprint: data.DeviceFingerprint,
		IsBlocked:         data.IsBlocked,
		DeviceInfo:        fromJSON(data.DeviceInfo),
		Note:              data.Note,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromDeviceAccessDomain(data *entity.DeviceAccessEntry) *model.DeviceAccessEntryModel {
	if data == nil {
		return nil
	}

	return &model.DeviceAccessEntryModel{
		PurchaseID:        data.PurchaseID,
		DeviceFingerprint: data.DeviceFingerprint,
		IsBlocked:         data.IsBlocked,
		DeviceInfo:        toJSON(data.DeviceInfo),
		Note:              data.Note,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
