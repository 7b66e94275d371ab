package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceAdminService implements the DeviceAdminUsecase interface.
// It is the only writer of device overrides and primary device bindings.
type deviceAdminService struct {
	purchaseRepo repository.PurchaseRepository
	accessRepo   repository.DeviceAccessRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// NewDeviceAdminService is the constructor for deviceAdminService.
func NewDeviceAdminService(
	purchaseRepo repository.PurchaseRepository,
	accessRepo repository.DeviceAccessRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.DeviceAdminUsecase {
	return &deviceAdminService{
		purchaseRepo: purchaseRepo,
		accessRepo:   accessRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (srv *deviceAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPurchase retrieves a purchase.
func (srv *deviceAdminService) GetPurchase(ctx context.Context, purchaseID uuid.UUID) (*entity.Purchase, error) {
	purchase, err := srv.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return nil, mapPurchaseError(err)
	}

	return purchase, nil
}

// CreatePurchase seeds an entitlement outside the payment flow.
func (srv *deviceAdminService) CreatePurchase(ctx context.Context, email, courseID string, locked bool) (*entity.Purchase, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || courseID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and course are required")
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:             uuid.New(),
		Email:          email,
		CourseID:       courseID,
		IsDeviceLocked: locked,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.purchaseRepo.Create(ctx, purchase); err != nil {
		if errors.Is(err, repository.ErrDuplicatePurchase) {
			return nil, errors.Wrap(domainerrors.ErrPurchaseExists, "create purchase")
		}

		return nil, errors.Wrap(err, "failed to create purchase")
	}

	srv.log(ctx).Info("Purchase created",
		slog.Any("purchase_id", purchase.ID),
		slog.String("course_id", courseID),
		slog.Bool("device_locked", locked),
	)

	return purchase, nil
}

// ListDevices lists the device overrides of a purchase.
func (srv *deviceAdminService) ListDevices(ctx context.Context, purchaseID uuid.UUID) ([]*entity.DeviceAccessEntry, error) {
	if _, err := srv.GetPurchase(ctx, purchaseID); err != nil {
		return nil, err
	}

	entries, err := srv.accessRepo.ListByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device access entries")
	}

	return entries, nil
}

// SetDeviceAccess grants or blocks a secondary device.
func (srv *deviceAdminService) SetDeviceAccess(ctx context.Context, purchaseID uuid.UUID, change *usecase.DeviceAccessChange) (*entity.DeviceAccessEntry, error) {
	purchase, err := srv.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	// The primary device is matched before overrides are consulted, so an override on it has no effect.
	if purchase.IsRegisteredDevice(change.Fingerprint) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fingerprint is the registered primary device")
	}

	now := time.Now()
	entry := &entity.DeviceAccessEntry{
		PurchaseID:        purchaseID,
		DeviceFingerprint: change.Fingerprint,
		IsBlocked:         change.IsBlocked,
		DeviceInfo:        change.DeviceInfo,
		Note:              change.Note,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := srv.accessRepo.Upsert(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device access entry")
	}

	// An update keeps the original created_at, so return the stored row.
	stored, err := srv.accessRepo.FindEntry(ctx, purchaseID, change.Fingerprint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload device access entry")
	}

	srv.log(ctx).Info("Device access updated",
		slog.Any("purchase_id", purchaseID),
		slog.Bool("blocked", change.IsBlocked),
	)

	return stored, nil
}

// RemoveDeviceAccess deletes a device override.
func (srv *deviceAdminService) RemoveDeviceAccess(ctx context.Context, purchaseID uuid.UUID, fingerprint string) error {
	if err := srv.accessRepo.Delete(ctx, purchaseID, fingerprint); err != nil {
		if errors.Is(err, repository.ErrDeviceAccessEntryNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceAccessEntryNotFound, "remove device access")
		}

		return errors.Wrap(err, "failed to delete device access entry")
	}

	return nil
}

// SetDeviceLock toggles device binding enforcement.
func (srv *deviceAdminService) SetDeviceLock(ctx context.Context, purchaseID uuid.UUID, locked bool) (*entity.Purchase, error) {
	if err := srv.purchaseRepo.SetDeviceLock(ctx, purchaseID, locked); err != nil {
		return nil, mapPurchaseError(err)
	}

	srv.log(ctx).Info("Device lock changed", slog.Any("purchase_id", purchaseID), slog.Bool("locked", locked))

	return srv.GetPurchase(ctx, purchaseID)
}

// RegisterPrimaryDevice binds the primary device with an insert-if-absent write.
// Re-registering the already bound fingerprint succeeds.
func (srv *deviceAdminService) RegisterPrimaryDevice(ctx context.Context, purchaseID uuid.UUID, fingerprint string, info json.RawMessage) (*entity.Purchase, error) {
	if fingerprint == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fingerprint is required")
	}

	purchase, err := srv.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	if purchase.IsRegisteredDevice(fingerprint) {
		return purchase, nil
	}
	if purchase.HasRegisteredDevice() {
		return nil, errors.Wrap(domainerrors.ErrDeviceAlreadyRegistered, "register primary device")
	}

	// The primary device wins before overrides are read, so an override for it is dropped with the bind.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PurchaseRepo().BindDeviceIfUnset(ctx, purchaseID, fingerprint, info); err != nil {
			return err
		}

		err := repoFactory.DeviceAccessRepo().Delete(ctx, purchaseID, fingerprint)
		if err != nil && !errors.Is(err, repository.ErrDeviceAccessEntryNotFound) {
			return errors.Wrap(err, "failed to drop override of primary device")
		}

		return nil
	})
	if err != nil && !errors.Is(err, repository.ErrFingerprintTaken) {
		return nil, mapPurchaseError(err)
	}

	// Re-read: a concurrent registration may have won the conditional write.
	purchase, err = srv.GetPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if !purchase.IsRegisteredDevice(fingerprint) {
		return nil, errors.Wrap(domainerrors.ErrDeviceAlreadyRegistered, "register primary device")
	}

	srv.log(ctx).Info("Primary device registered", slog.Any("purchase_id", purchaseID))

	return purchase, nil
}

// ResetDevices clears the primary device and all overrides atomically.
func (srv *deviceAdminService) ResetDevices(ctx context.Context, purchaseID uuid.UUID) error {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.PurchaseRepo().ClearDevice(ctx, purchaseID); err != nil {
			return mapPurchaseError(err)
		}

		n, err := repoFactory.DeviceAccessRepo().DeleteByPurchase(ctx, purchaseID)
		if err != nil {
			return errors.Wrap(err, "failed to delete device access entries")
		}
		removed = n

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to reset devices")
	}

	srv.log(ctx).Info("Devices reset", slog.Any("purchase_id", purchaseID), slog.Int64("entries_removed", removed))

	return nil
}

func mapPurchaseError(err error) error {
	if errors.Is(err, repository.ErrPurchaseNotFound) {
		return errors.Wrap(domainerrors.ErrPurchaseNotFound, "purchase lookup")
	}

	return errors.Wrap(err, "purchase store")
}
