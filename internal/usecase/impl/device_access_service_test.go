package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	"academy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deviceAccessFixtures holds all test dependencies for device access tests.
type deviceAccessFixtures struct {
	service      usecase.DeviceAccessUsecase
	purchaseRepo *mockRepo.MockPurchaseRepository
	accessRepo   *mockRepo.MockDeviceAccessRepository
}

func createTestDeviceAccessService(t *testing.T) deviceAccessFixtures {
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	accessRepo := mockRepo.NewMockDeviceAccessRepository(t)

	return deviceAccessFixtures{
		service:      NewDeviceAccessService(purchaseRepo, accessRepo, newDiscardLogger()),
		purchaseRepo: purchaseRepo,
		accessRepo:   accessRepo,
	}
}

func TestDeviceAccessService_Validate_NoPurchase(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(nil, repository.ErrPurchaseNotFound)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F1")
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, entity.ReasonNoPurchase, decision.Reason)
	assert.Nil(t, decision.RegisteredDevice)
}

func TestDeviceAccessService_Validate_NormalizesEmail(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(nil, repository.ErrPurchaseNotFound)

	_, err := fx.service.Validate(ctx, "  A@X.com ", "c1", "F1")
	require.NoError(t, err)
}

func TestDeviceAccessService_Validate_UnlockedAllowsAnyFingerprint(t *testing.T) {
	for _, fingerprint := range []string{"", "F1", "anything"} {
		t.Run("fingerprint="+fingerprint, func(t *testing.T) {
			fx := createTestDeviceAccessService(t)
			ctx := context.Background()
			purchase := newLockedPurchase("a@x.com", "c1", "F1")
			purchase.IsDeviceLocked = false

			fx.purchaseRepo.EXPECT().
				FindByEmailAndCourse(ctx, "a@x.com", "c1").
				Return(purchase, nil)

			decision, err := fx.service.Validate(ctx, "a@x.com", "c1", fingerprint)
			require.NoError(t, err)
			assert.Equal(t, entity.Granted(), decision)
		})
	}
}

func TestDeviceAccessService_Validate_RegisteredDevice(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(newLockedPurchase("a@x.com", "c1", "F1"), nil)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F1")
	require.NoError(t, err)
	assert.True(t, decision.HasAccess)
}

func TestDeviceAccessService_Validate_UnknownDeviceWithoutEntry(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(purchase, nil)
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F2").
		Return(nil, repository.ErrDeviceAccessEntryNotFound)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F2")
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, entity.ReasonDeviceNotAuthorized, decision.Reason)
	require.NotNil(t, decision.RegisteredDevice)
	require.NotNil(t, decision.RegisteredDevice.Fingerprint)
	assert.Equal(t, "F1", *decision.RegisteredDevice.Fingerprint)
	assert.JSONEq(t, `{"platform":"MacIntel"}`, string(decision.RegisteredDevice.Info))
}

func TestDeviceAccessService_Validate_AllowedEntry(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(purchase, nil)
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F2").
		Return(&entity.DeviceAccessEntry{PurchaseID: purchase.ID, DeviceFingerprint: "F2"}, nil)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F2")
	require.NoError(t, err)
	assert.True(t, decision.HasAccess)
}

func TestDeviceAccessService_Validate_BlockedEntry(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(purchase, nil)
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F2").
		Return(&entity.DeviceAccessEntry{PurchaseID: purchase.ID, DeviceFingerprint: "F2", IsBlocked: true}, nil)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F2")
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, entity.ReasonDeviceNotAuthorized, decision.Reason)
}

func TestDeviceAccessService_Validate_EmptyFingerprintSkipsEntryLookup(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(newLockedPurchase("a@x.com", "c1", "F1"), nil)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "")
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, entity.ReasonDeviceNotAuthorized, decision.Reason)
}

func TestDeviceAccessService_Validate_LockedWithoutRegisteredDevice(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(purchase, nil)
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F1").
		Return(nil, repository.ErrDeviceAccessEntryNotFound)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F1")
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	require.NotNil(t, decision.RegisteredDevice)
	assert.Nil(t, decision.RegisteredDevice.Fingerprint)
}

func TestDeviceAccessService_Validate_PurchaseStoreFailure(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(nil, storeErr)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F1")
	assert.Nil(t, decision)
	assert.ErrorIs(t, err, storeErr)
}

func TestDeviceAccessService_Validate_EntryStoreFailure(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")
	storeErr := errors.New("connection reset")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(purchase, nil)
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F2").
		Return(nil, storeErr)

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F2")
	assert.Nil(t, decision)
	assert.ErrorIs(t, err, storeErr)
}

// Purchase locked to F1; F2 is denied until an allowing override is added.
func TestDeviceAccessService_Validate_SecondDeviceScenario(t *testing.T) {
	fx := createTestDeviceAccessService(t)
	ctx := context.Background()
	purchase := newLockedPurchase("a@x.com", "c1", "F1")

	fx.purchaseRepo.EXPECT().
		FindByEmailAndCourse(ctx, "a@x.com", "c1").
		Return(purchase, nil).
		Times(3)
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F2").
		Return(nil, repository.ErrDeviceAccessEntryNotFound).
		Once()
	fx.accessRepo.EXPECT().
		FindEntry(ctx, purchase.ID, "F2").
		Return(&entity.DeviceAccessEntry{PurchaseID: purchase.ID, DeviceFingerprint: "F2", IsBlocked: false}, nil).
		Once()

	decision, err := fx.service.Validate(ctx, "a@x.com", "c1", "F1")
	require.NoError(t, err)
	assert.Equal(t, &entity.AccessDecision{HasAccess: true}, decision)

	decision, err = fx.service.Validate(ctx, "a@x.com", "c1", "F2")
	require.NoError(t, err)
	assert.False(t, decision.HasAccess)
	assert.Equal(t, entity.ReasonDeviceNotAuthorized, decision.Reason)
	assert.Equal(t, "F1", *decision.RegisteredDevice.Fingerprint)

	decision, err = fx.service.Validate(ctx, "a@x.com", "c1", "F2")
	require.NoError(t, err)
	assert.True(t, decision.HasAccess)
}
