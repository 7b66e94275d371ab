package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"academy/internal/delivery/api/middleware"
	"academy/internal/delivery/api/response"
	"academy/internal/delivery/api/validator"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/fingerprint"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	AccessUC      usecase.DeviceAccessUsecase
	FingerprintUC usecase.FingerprintUsecase
	Metrics       service.AccessMetrics
	Logger        *slog.Logger
}

// DeviceHandler serves the streaming-time device checks.
type DeviceHandler struct {
	accessUC      usecase.DeviceAccessUsecase
	fingerprintUC usecase.FingerprintUsecase
	metrics       service.AccessMetrics
	logger        *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		accessUC:      params.AccessUC,
		fingerprintUC: params.FingerprintUC,
		metrics:       params.Metrics,
		logger:        params.Logger,
	}
}

// ValidateDeviceRequest represents the request body for a device access check
type ValidateDeviceRequest struct {
	CourseID          string          `json:"courseId" validate:"required"`
	DeviceFingerprint json.RawMessage `json:"deviceFingerprint"`
}

// CandidateFingerprint returns the submitted fingerprint. A missing or non-string
// value yields "", which never matches and ends in a denial.
func (r *ValidateDeviceRequest) CandidateFingerprint() string {
	var fingerprint string
	if err := json.Unmarshal(r.DeviceFingerprint, &fingerprint); err != nil {
		return ""
	}

	return fingerprint
}

// ValidateDevice answers whether the calling device may stream the course.
// Denials are 200 responses with hasAccess=false.
func (h *DeviceHandler) ValidateDevice(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrIdentityUnresolved)
	}

	var req ValidateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device validation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.Describe(err))
	}

	decision, err := h.accessUC.Validate(c.Request().Context(), identity.Email, req.CourseID, req.CandidateFingerprint())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.metrics.ObserveDecision(decision.Outcome())

	return c.JSON(http.StatusOK, decision)
}

// ComputeFingerprint derives the fingerprint of a submitted environment snapshot.
func (h *DeviceHandler) ComputeFingerprint(c echo.Context) error {
	var env fingerprint.Environment
	if err := c.Bind(&env); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid environment snapshot")
	}

	result, err := h.fingerprintUC.Generate(&env)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
