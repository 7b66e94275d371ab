// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

// deviceAccessService implements the DeviceAccessUsecase interface.
// It only reads: no binding, no counters, no writes.
type deviceAccessService struct {
	purchaseRepo repository.PurchaseRepository
	accessRepo   repository.DeviceAccessRepository
	logger       *slog.Logger
}

// NewDeviceAccessService is the constructor for deviceAccessService.
func NewDeviceAccessService(
	purchaseRepo repository.PurchaseRepository,
	accessRepo repository.DeviceAccessRepository,
	logger *slog.Logger,
) usecase.DeviceAccessUsecase {
	return &deviceAccessService{
		purchaseRepo: purchaseRepo,
		accessRepo:   accessRepo,
		logger:       logger,
	}
}

func (srv *deviceAccessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Validate evaluates, in order: purchase exists, lock disabled, primary device, explicit override.
func (srv *deviceAccessService) Validate(ctx context.Context, email, courseID, fingerprint string) (*entity.AccessDecision, error) {
	purchase, err := srv.purchaseRepo.FindByEmailAndCourse(ctx, entity.NormalizeEmail(email), courseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			srv.log(ctx).Debug("No purchase for course", slog.String("course_id", courseID))

			return entity.DeniedNoPurchase(), nil
		}

		return nil, errors.Wrap(err, "failed to find purchase")
	}

	if !purchase.IsDeviceLocked {
		return entity.Granted(), nil
	}

	if purchase.IsRegisteredDevice(fingerprint) {
		return entity.Granted(), nil
	}

	if fingerprint != "" {
		entry, err := srv.accessRepo.FindEntry(ctx, purchase.ID, fingerprint)
		switch {
		case err == nil:
			if entry.Allows() {
				return entity.Granted(), nil
			}
		case errors.Is(err, repository.ErrDeviceAccessEntryNotFound):
		default:
			return nil, errors.Wrap(err, "failed to find device access entry")
		}
	}

	srv.log(ctx).Info("Device not authorized for purchase",
		slog.Any("purchase_id", purchase.ID),
		slog.String("course_id", courseID),
	)

	return entity.DeniedDevice(purchase), nil
}
