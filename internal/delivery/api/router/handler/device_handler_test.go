package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"academy/internal/delivery/api/validator"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/fingerprint"
	mockService "academy/internal/mocks/service"
	mockUsecase "academy/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceHandlerFixture struct {
	accessUC      *mockUsecase.MockDeviceAccessUsecase
	fingerprintUC *mockUsecase.MockFingerprintUsecase
	metrics       *mockService.MockAccessMetrics
	handler       *DeviceHandler
	echo          *echo.Echo
}

func newDeviceHandlerFixture(t *testing.T) *deviceHandlerFixture {
	f := &deviceHandlerFixture{
		accessUC:      mockUsecase.NewMockDeviceAccessUsecase(t),
		fingerprintUC: mockUsecase.NewMockFingerprintUsecase(t),
		metrics:       mockService.NewMockAccessMetrics(t),
		echo:          echo.New(),
	}
	f.echo.Validator = validator.New()
	f.handler = NewDeviceHandler(DeviceHandlerParams{
		AccessUC:      f.accessUC,
		FingerprintUC: f.fingerprintUC,
		Metrics:       f.metrics,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func (f *deviceHandlerFixture) context(body string, email string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := f.echo.NewContext(req, rec)
	if email != "" {
		c.Set("identity", &entity.Identity{Email: email})
	}

	return c, rec
}

func TestValidateDevice_RecordsOutcome(t *testing.T) {
	f := newDeviceHandlerFixture(t)

	f.accessUC.EXPECT().
		Validate(mock.Anything, "a@x.com", "course-1", "F9").
		Return(entity.DeniedNoPurchase(), nil)
	f.metrics.EXPECT().ObserveDecision("no_purchase").Once()

	c, rec := f.context(`{"courseId":"course-1","deviceFingerprint":"F9"}`, "a@x.com")
	require.NoError(t, f.handler.ValidateDevice(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hasAccess":false,"reason":"no purchase found"}`, rec.Body.String())
}

func TestValidateDevice_NonStringFingerprintIsNonMatching(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "number", body: `{"courseId":"course-1","deviceFingerprint":123}`},
		{name: "object", body: `{"courseId":"course-1","deviceFingerprint":{"id":"F1"}}`},
		{name: "null", body: `{"courseId":"course-1","deviceFingerprint":null}`},
		{name: "absent", body: `{"courseId":"course-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDeviceHandlerFixture(t)

			purchase := &entity.Purchase{IsDeviceLocked: true}
			f.accessUC.EXPECT().
				Validate(mock.Anything, "a@x.com", "course-1", "").
				Return(entity.DeniedDevice(purchase), nil)
			f.metrics.EXPECT().ObserveDecision("device_denied").Once()

			c, rec := f.context(tt.body, "a@x.com")
			require.NoError(t, f.handler.ValidateDevice(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"reason":"device not authorized"`)
		})
	}
}

func TestValidateDevice_NoIdentity(t *testing.T) {
	f := newDeviceHandlerFixture(t)

	c, rec := f.context(`{"courseId":"course-1"}`, "")
	require.NoError(t, f.handler.ValidateDevice(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateDevice_StoreFailureSkipsMetrics(t *testing.T) {
	f := newDeviceHandlerFixture(t)

	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "find purchase")
	f.accessUC.EXPECT().
		Validate(mock.Anything, "a@x.com", "course-1", "").
		Return(nil, storeErr)

	c, _ := f.context(`{"courseId":"course-1"}`, "a@x.com")
	err := f.handler.ValidateDevice(c)

	assert.ErrorIs(t, err, storeErr)
}

func TestComputeFingerprint(t *testing.T) {
	f := newDeviceHandlerFixture(t)

	f.fingerprintUC.EXPECT().
		Generate(mock.MatchedBy(func(env *fingerprint.Environment) bool {
			return env.UserAgent == "Mozilla/5.0" && env.ScreenWidth == 1280
		})).
		Return(&fingerprint.Result{Fingerprint: "abc", Schema: "v1/sha256"}, nil)

	c, rec := f.context(`{"userAgent":"Mozilla/5.0","screenWidth":1280,"screenHeight":800}`, "a@x.com")
	require.NoError(t, f.handler.ComputeFingerprint(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fingerprint":"abc"`)
}

func TestComputeFingerprint_Unsupported(t *testing.T) {
	f := newDeviceHandlerFixture(t)

	f.fingerprintUC.EXPECT().
		Generate(mock.Anything).
		Return(nil, domainerrors.ErrUnsupportedEnvironment.WithDetails("user agent missing"))

	c, rec := f.context(`{}`, "a@x.com")
	require.NoError(t, f.handler.ComputeFingerprint(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNSUPPORTED_ENVIRONMENT")
}
