package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceAdminFixtures struct {
	service      usecase.DeviceAdminUsecase
	purchaseRepo *mockRepo.MockPurchaseRepository
	accessRepo   *mockRepo.MockDeviceAccessRepository
	txManager    *mockRepo.MockTransactionManager
}

func createTestDeviceAdminService(t *testing.T) deviceAdminFixtures {
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	accessRepo := mockRepo.NewMockDeviceAccessRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	return deviceAdminFixtures{
		service:      NewDeviceAdminService(purchaseRepo, accessRepo, txManager, newDiscardLogger()),
		purchaseRepo: purchaseRepo,
		accessRepo:   accessRepo,
		txManager:    txManager,
	}
}

func TestDeviceAdminService_GetPurchase_NotFound(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.purchaseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPurchaseNotFound)

	purchase, err := fx.service.GetPurchase(ctx, id)
	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseNotFound)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PURCHASE_NOT_FOUND", appErr.ErrorCode())
}

func TestDeviceAdminService_CreatePurchase(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Purchase) bool {
			return p.Email == "a@x.com" && p.CourseID == "c1" && p.IsDeviceLocked && p.DeviceFingerprint == nil
		})).
		Return(nil)

	purchase, err := fx.service.CreatePurchase(ctx, "A@x.com", "c1", true)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, purchase.ID)
}

func TestDeviceAdminService_CreatePurchase_Duplicate(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Purchase")).
		Return(repository.ErrDuplicatePurchase)

	_, err := fx.service.CreatePurchase(ctx, "a@x.com", "c1", true)
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseExists)
}

func TestDeviceAdminService_CreatePurchase_RequiresEmailAndCourse(t *testing.T) {
	fx := createTestDeviceAdminService(t)

	_, err := fx.service.CreatePurchase(context.Background(), " ", "c1", true)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeviceAdminService_ListDevices(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")
	entries := []*entity.DeviceAccessEntry{{PurchaseID: purchase.ID, DeviceFingerprint: "F2"}}

	fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)
	fx.accessRepo.EXPECT().ListByPurchase(ctx, purchase.ID).Return(entries, nil)

	got, err := fx.service.ListDevices(ctx, purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestDeviceAdminService_SetDeviceAccess_Grant(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")
	firstGranted := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	stored := &entity.DeviceAccessEntry{
		PurchaseID:        purchase.ID,
		DeviceFingerprint: "F2",
		Note:              "tablet",
		CreatedAt:         firstGranted,
		UpdatedAt:         time.Now(),
	}

	fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)
	fx.accessRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(e *entity.DeviceAccessEntry) bool {
			return e.PurchaseID == purchase.ID && e.DeviceFingerprint == "F2" && !e.IsBlocked && e.Note == "tablet"
		})).
		Return(nil)
	fx.accessRepo.EXPECT().FindEntry(ctx, purchase.ID, "F2").Return(stored, nil)

	entry, err := fx.service.SetDeviceAccess(ctx, purchase.ID, &usecase.DeviceAccessChange{
		Fingerprint: "F2",
		Note:        "tablet",
	})
	require.NoError(t, err)
	assert.True(t, entry.Allows())
	assert.Equal(t, firstGranted, entry.CreatedAt, "an updated override keeps its original creation time")
}

func TestDeviceAdminService_SetDeviceAccess_RejectsPrimaryDevice(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)

	_, err := fx.service.SetDeviceAccess(ctx, purchase.ID, &usecase.DeviceAccessChange{Fingerprint: "F1", IsBlocked: true})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDeviceAdminService_RemoveDeviceAccess_NotFound(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accessRepo.EXPECT().Delete(ctx, id, "F2").Return(repository.ErrDeviceAccessEntryNotFound)

	err := fx.service.RemoveDeviceAccess(ctx, id, "F2")
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAccessEntryNotFound)
}

func TestDeviceAdminService_SetDeviceLock(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")
	purchase.IsDeviceLocked = false

	fx.purchaseRepo.EXPECT().SetDeviceLock(ctx, purchase.ID, false).Return(nil)
	fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)

	got, err := fx.service.SetDeviceLock(ctx, purchase.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsDeviceLocked)
}

// expectBindTx runs the bind transaction against fresh repository mocks.
func expectBindTx(t *testing.T, fx deviceAdminFixtures, setup func(*mockRepo.MockPurchaseRepository, *mockRepo.MockDeviceAccessRepository)) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockAccessRepo := mockRepo.NewMockDeviceAccessRepository(t)

			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo).Maybe()
			mockFactory.EXPECT().DeviceAccessRepo().Return(mockAccessRepo).Maybe()
			setup(mockPurchaseRepo, mockAccessRepo)

			return fn(mockFactory)
		})
}

func TestDeviceAdminService_RegisterPrimaryDevice_FirstBind(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	unbound := newLockedPurchase("a@x.com", "c1", "")
	bound := *unbound
	bound.DeviceFingerprint = strPtr("F1")
	info := json.RawMessage(`{"platform":"Win32"}`)

	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(unbound, nil).Once()
	expectBindTx(t, fx, func(purchaseRepo *mockRepo.MockPurchaseRepository, accessRepo *mockRepo.MockDeviceAccessRepository) {
		purchaseRepo.EXPECT().BindDeviceIfUnset(ctx, unbound.ID, "F1", info).Return(nil)
		accessRepo.EXPECT().Delete(ctx, unbound.ID, "F1").Return(repository.ErrDeviceAccessEntryNotFound)
	})
	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(&bound, nil).Once()

	got, err := fx.service.RegisterPrimaryDevice(ctx, unbound.ID, "F1", info)
	require.NoError(t, err)
	assert.True(t, got.IsRegisteredDevice("F1"))
}

func TestDeviceAdminService_RegisterPrimaryDevice_DropsOverrideOfNewPrimary(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	unbound := newLockedPurchase("a@x.com", "c1", "")
	bound := *unbound
	bound.DeviceFingerprint = strPtr("F2")

	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(unbound, nil).Once()
	expectBindTx(t, fx, func(purchaseRepo *mockRepo.MockPurchaseRepository, accessRepo *mockRepo.MockDeviceAccessRepository) {
		purchaseRepo.EXPECT().BindDeviceIfUnset(ctx, unbound.ID, "F2", json.RawMessage(nil)).Return(nil)
		accessRepo.EXPECT().Delete(ctx, unbound.ID, "F2").Return(nil).Once()
	})
	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(&bound, nil).Once()

	got, err := fx.service.RegisterPrimaryDevice(ctx, unbound.ID, "F2", nil)
	require.NoError(t, err)
	assert.True(t, got.IsRegisteredDevice("F2"))
}

func TestDeviceAdminService_RegisterPrimaryDevice_OverrideCleanupFails(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	unbound := newLockedPurchase("a@x.com", "c1", "")
	storeErr := errors.New("connection reset")

	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(unbound, nil).Once()
	expectBindTx(t, fx, func(purchaseRepo *mockRepo.MockPurchaseRepository, accessRepo *mockRepo.MockDeviceAccessRepository) {
		purchaseRepo.EXPECT().BindDeviceIfUnset(ctx, unbound.ID, "F1", json.RawMessage(nil)).Return(nil)
		accessRepo.EXPECT().Delete(ctx, unbound.ID, "F1").Return(storeErr)
	})

	_, err := fx.service.RegisterPrimaryDevice(ctx, unbound.ID, "F1", nil)
	assert.ErrorIs(t, err, storeErr)
}

func TestDeviceAdminService_RegisterPrimaryDevice_Idempotent(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)

	got, err := fx.service.RegisterPrimaryDevice(ctx, purchase.ID, "F1", nil)
	require.NoError(t, err)
	assert.Equal(t, purchase, got)
}

func TestDeviceAdminService_RegisterPrimaryDevice_AlreadyBound(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().FindByID(ctx, purchase.ID).Return(purchase, nil)

	_, err := fx.service.RegisterPrimaryDevice(ctx, purchase.ID, "F2", nil)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyRegistered)
}

func TestDeviceAdminService_RegisterPrimaryDevice_LosesRace(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	unbound := newLockedPurchase("a@x.com", "c1", "")
	winner := *unbound
	winner.DeviceFingerprint = strPtr("F9")

	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(unbound, nil).Once()
	expectBindTx(t, fx, func(purchaseRepo *mockRepo.MockPurchaseRepository, _ *mockRepo.MockDeviceAccessRepository) {
		purchaseRepo.EXPECT().BindDeviceIfUnset(ctx, unbound.ID, "F1", json.RawMessage(nil)).Return(repository.ErrFingerprintTaken)
	})
	fx.purchaseRepo.EXPECT().FindByID(ctx, unbound.ID).Return(&winner, nil).Once()

	_, err := fx.service.RegisterPrimaryDevice(ctx, unbound.ID, "F1", nil)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceAlreadyRegistered)
}

func TestDeviceAdminService_ResetDevices(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockAccessRepo := mockRepo.NewMockDeviceAccessRepository(t)

			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().DeviceAccessRepo().Return(mockAccessRepo)

			mockPurchaseRepo.EXPECT().ClearDevice(ctx, id).Return(nil)
			mockAccessRepo.EXPECT().DeleteByPurchase(ctx, id).Return(int64(2), nil)

			return fn(mockFactory)
		})

	require.NoError(t, fx.service.ResetDevices(ctx, id))
}

func TestDeviceAdminService_ResetDevices_PurchaseMissing(t *testing.T) {
	fx := createTestDeviceAdminService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockPurchaseRepo.EXPECT().ClearDevice(ctx, id).Return(repository.ErrPurchaseNotFound)

			return fn(mockFactory)
		})

	err := fx.service.ResetDevices(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPurchaseNotFound)
}
