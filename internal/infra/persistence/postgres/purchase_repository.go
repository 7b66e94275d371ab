// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// FindByEmailAndCourse retrieves the purchase for an identity and course.
// Reads go to the primary so administrative writes are visible on the next check.
func (repo *purchaseRepository) FindByEmailAndCourse(ctx context.Context, email, courseID string) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND course_id = ?", email, courseID).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find purchase by email and course")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindByID retrieves a purchase by its unique ID.
func (repo *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// Create persists a new purchase.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// SetDeviceLock toggles device binding enforcement.
func (repo *purchaseRepository) SetDeviceLock(ctx context.Context, id uuid.UUID, locked bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Update("is_device_locked", locked)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device lock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

// BindDeviceIfUnset writes the primary fingerprint with a conditional update.
// Of two concurrent binds only one matches "device_fingerprint IS NULL".
func (repo *purchaseRepository) BindDeviceIfUnset(ctx context.Context, id uuid.UUID, fingerprint string, info json.RawMessage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ? AND device_fingerprint IS NULL", id).
		Updates(map[string]any{
			"device_fingerprint": fingerprint,
			"device_info":        toJSON(info),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to bind primary device")
	}

	if result.RowsAffected == 1 {
		return nil
	}

	// Nothing matched: the purchase is gone or already bound.
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check purchase")
	}

	if count == 0 {
		return repository.ErrPurchaseNotFound
	}

	return repository.ErrFingerprintTaken
}

// ClearDevice removes the primary fingerprint and its snapshot.
func (repo *purchaseRepository) ClearDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"device_fingerprint": gorm.Expr("NULL"),
			"device_info":        gorm.Expr("NULL"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear primary device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPurchaseNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity.
func toPurchaseDomain(data *model.PurchaseModel) *entity.Purchase {
	if data == nil {
		return nil
	}

	return &entity.Purchase{
		ID:                data.ID,
		Email:             data.Email,
		CourseID:          data.CourseID,
		IsDeviceLocked:    data.IsDeviceLocked,
		DeviceFingerprint: data.DeviceFingerprint,
		DeviceInfo:        fromJSON(data.DeviceInfo),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) *model.PurchaseModel {
	if data == nil {
		return nil
	}

	return &model.PurchaseModel{
		ID:                data.ID,
		Email:             data.Email,
		CourseID:          data.CourseID,
		IsDeviceLocked:    data.IsDeviceLocked,
		DeviceFingerprint: data.DeviceFingerprint,
		DeviceInfo:        toJSON(data.DeviceInfo),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}

	return datatypes.JSON(raw)
}

func fromJSON(data datatypes.JSON) json.RawMessage {
	if len(data) == 0 {
		return nil
	}

	return json.RawMessage(data)
}
