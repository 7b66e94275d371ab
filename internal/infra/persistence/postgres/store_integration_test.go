//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"testing"
	"time"

	"academy/config"
	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/usecase"
	"academy/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dockerAvailable() bool {
	cmd := exec.Command("docker", "info")
	return cmd.Run() == nil
}

// setupTestDB starts a PostgreSQL container, migrates it and returns a connected *gorm.DB.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if !dockerAvailable() {
		t.Skip("Docker is not available, skipping integration test")
	}

	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("academy_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Terminate(ctx)
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpg.Open(connStr), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db = configure(db, &config.Config{}, logger)

	require.NoError(t, Migrate(ctx, db, logger))

	return db
}

func seedPurchase(t *testing.T, repo repository.PurchaseRepository, email, courseID string) *entity.Purchase {
	t.Helper()

	purchase := &entity.Purchase{
		ID:             uuid.New(),
		Email:          email,
		CourseID:       courseID,
		IsDeviceLocked: true,
	}
	require.NoError(t, repo.Create(context.Background(), purchase))

	return purchase
}

func TestStore_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	purchaseRepo := NewPurchaseRepository(db)
	accessRepo := NewDeviceAccessRepository(db)
	roleRepo := NewRoleAssignmentRepository(db)
	txManager := NewTransactionManager(db)

	t.Run("DuplicatePurchase", func(t *testing.T) {
		seedPurchase(t, purchaseRepo, "dup@x.com", "c1")

		err := purchaseRepo.Create(ctx, &entity.Purchase{ID: uuid.New(), Email: "dup@x.com", CourseID: "c1"})
		assert.ErrorIs(t, err, repository.ErrDuplicatePurchase)
	})

	t.Run("FindByEmailAndCourse_NotFound", func(t *testing.T) {
		_, err := purchaseRepo.FindByEmailAndCourse(ctx, "nobody@x.com", "c1")
		assert.ErrorIs(t, err, repository.ErrPurchaseNotFound)
	})

	t.Run("BindDeviceIfUnset_OnlyFirstWins", func(t *testing.T) {
		purchase := seedPurchase(t, purchaseRepo, "race@x.com", "c1")

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i, fp := range []string{"F1", "F2"} {
			wg.Add(1)
			go func(i int, fp string) {
				defer wg.Done()
				results[i] = purchaseRepo.BindDeviceIfUnset(ctx, purchase.ID, fp, json.RawMessage(`{"os":"x"}`))
			}(i, fp)
		}
		wg.Wait()

		var wins, losses int
		for _, err := range results {
			switch {
			case err == nil:
				wins++
			case assert.ErrorIs(t, err, repository.ErrFingerprintTaken):
				losses++
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, 1, losses)

		got, err := purchaseRepo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		require.True(t, got.HasRegisteredDevice())
		assert.JSONEq(t, `{"os":"x"}`, string(got.DeviceInfo))
	})

	t.Run("BindDeviceIfUnset_MissingPurchase", func(t *testing.T) {
		err := purchaseRepo.BindDeviceIfUnset(ctx, uuid.New(), "F1", nil)
		assert.ErrorIs(t, err, repository.ErrPurchaseNotFound)
	})

	t.Run("UpsertEntry_UpdatesInPlace", func(t *testing.T) {
		purchase := seedPurchase(t, purchaseRepo, "upsert@x.com", "c1")

		require.NoError(t, accessRepo.Upsert(ctx, &entity.DeviceAccessEntry{
			PurchaseID: purchase.ID, DeviceFingerprint: "F2", Note: "laptop",
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}))
		require.NoError(t, accessRepo.Upsert(ctx, &entity.DeviceAccessEntry{
			PurchaseID: purchase.ID, DeviceFingerprint: "F2", IsBlocked: true, Note: "stolen",
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		}))

		entries, err := accessRepo.ListByPurchase(ctx, purchase.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, entries[0].IsBlocked)
		assert.Equal(t, "stolen", entries[0].Note)
	})

	t.Run("UpsertEntry_UnknownPurchase", func(t *testing.T) {
		err := accessRepo.Upsert(ctx, &entity.DeviceAccessEntry{PurchaseID: uuid.New(), DeviceFingerprint: "F2"})
		assert.ErrorIs(t, err, repository.ErrPurchaseNotFound)
	})

	t.Run("ResetDevices_Transactional", func(t *testing.T) {
		purchase := seedPurchase(t, purchaseRepo, "reset@x.com", "c1")
		require.NoError(t, purchaseRepo.BindDeviceIfUnset(ctx, purchase.ID, "F1", nil))
		require.NoError(t, accessRepo.Upsert(ctx, &entity.DeviceAccessEntry{PurchaseID: purchase.ID, DeviceFingerprint: "F2"}))

		admin := impl.NewDeviceAdminService(purchaseRepo, accessRepo, txManager, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, admin.ResetDevices(ctx, purchase.ID))

		got, err := purchaseRepo.FindByID(ctx, purchase.ID)
		require.NoError(t, err)
		assert.False(t, got.HasRegisteredDevice())

		entries, err := accessRepo.ListByPurchase(ctx, purchase.ID)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("SetDeviceAccess_KeepsCreatedAt", func(t *testing.T) {
		purchase := seedPurchase(t, purchaseRepo, "regrant@x.com", "c1")
		admin := impl.NewDeviceAdminService(purchaseRepo, accessRepo, txManager, slog.New(slog.NewTextHandler(io.Discard, nil)))

		first, err := admin.SetDeviceAccess(ctx, purchase.ID, &usecase.DeviceAccessChange{Fingerprint: "F2", Note: "laptop"})
		require.NoError(t, err)

		second, err := admin.SetDeviceAccess(ctx, purchase.ID, &usecase.DeviceAccessChange{Fingerprint: "F2", IsBlocked: true})
		require.NoError(t, err)

		assert.True(t, second.IsBlocked)
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	})

	t.Run("RegisterPrimaryDevice_DropsOverride", func(t *testing.T) {
		purchase := seedPurchase(t, purchaseRepo, "promote@x.com", "c1")
		require.NoError(t, accessRepo.Upsert(ctx, &entity.DeviceAccessEntry{PurchaseID: purchase.ID, DeviceFingerprint: "F3", IsBlocked: true}))

		admin := impl.NewDeviceAdminService(purchaseRepo, accessRepo, txManager, slog.New(slog.NewTextHandler(io.Discard, nil)))
		got, err := admin.RegisterPrimaryDevice(ctx, purchase.ID, "F3", nil)
		require.NoError(t, err)
		assert.True(t, got.IsRegisteredDevice("F3"))

		_, err = accessRepo.FindEntry(ctx, purchase.ID, "F3")
		assert.ErrorIs(t, err, repository.ErrDeviceAccessEntryNotFound)
	})

	t.Run("RoleImport_ReplacesTable", func(t *testing.T) {
		roles := impl.NewRoleService(roleRepo, txManager, slog.New(slog.NewTextHandler(io.Discard, nil)))

		require.NoError(t, roles.Import(ctx, []entity.RoleAssignment{
			{Email: "a@x.com", Role: entity.RoleAdmin},
			{Email: "b@x.com", Role: entity.RoleTeacher},
		}))
		require.NoError(t, roles.Import(ctx, []entity.RoleAssignment{
			{Email: "b@x.com", Role: entity.RoleInstructor},
		}))

		ok, err := roles.HasRole(ctx, "a@x.com", entity.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := roles.RolesOf(ctx, "b@x.com")
		require.NoError(t, err)
		assert.Equal(t, entity.Roles{entity.RoleInstructor}, got)
	})

	t.Run("Evaluator_SecondDeviceScenario", func(t *testing.T) {
		purchase := seedPurchase(t, purchaseRepo, "student@x.com", "c9")
		require.NoError(t, purchaseRepo.BindDeviceIfUnset(ctx, purchase.ID, "F1", json.RawMessage(`{"platform":"Win32"}`)))

		evaluator := impl.NewDeviceAccessService(purchaseRepo, accessRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

		decision, err := evaluator.Validate(ctx, "student@x.com", "c9", "F1")
		require.NoError(t, err)
		assert.True(t, decision.HasAccess)

		decision, err = evaluator.Validate(ctx, "student@x.com", "c9", "F2")
		require.NoError(t, err)
		assert.False(t, decision.HasAccess)
		assert.Equal(t, entity.ReasonDeviceNotAuthorized, decision.Reason)
		require.NotNil(t, decision.RegisteredDevice)
		assert.Equal(t, "F1", *decision.RegisteredDevice.Fingerprint)

		require.NoError(t, accessRepo.Upsert(ctx, &entity.DeviceAccessEntry{PurchaseID: purchase.ID, DeviceFingerprint: "F2"}))

		decision, err = evaluator.Validate(ctx, "student@x.com", "c9", "F2")
		require.NoError(t, err)
		assert.True(t, decision.HasAccess)
	})
}
