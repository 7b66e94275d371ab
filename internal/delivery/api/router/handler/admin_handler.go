package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"academy/internal/delivery/api/response"
	"academy/internal/delivery/api/validator"
	"academy/internal/domain/entity"
	"academy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.DeviceAdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for purchase and device administration handlers
type AdminHandler struct {
	adminUC usecase.DeviceAdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// SetDeviceAccessRequest represents the request body for granting or blocking a device
type SetDeviceAccessRequest struct {
	IsBlocked  bool            `json:"isBlocked"`
	Note       string          `json:"note" validate:"max=500"`
	DeviceInfo json.RawMessage `json:"deviceInfo"`
}

// SetDeviceLockRequest represents the request body for toggling device binding
type SetDeviceLockRequest struct {
	IsDeviceLocked *bool `json:"isDeviceLocked" validate:"required"`
}

// RegisterPrimaryDeviceRequest represents the request body for binding the primary device
type RegisterPrimaryDeviceRequest struct {
	Fingerprint string          `json:"fingerprint" validate:"required,max=128"`
	DeviceInfo  json.RawMessage `json:"deviceInfo"`
}

// fingerprintParam returns the :fingerprint path segment and whether it fits the stored column.
func fingerprintParam(c echo.Context) (string, bool) {
	fingerprint := c.Param("fingerprint")

	return fingerprint, fingerprint != "" && utf8.RuneCountInString(fingerprint) <= entity.MaxFingerprintLength
}

func invalidFingerprintParam(c echo.Context) error {
	return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", []string{"fingerprint: max"})
}

// GetPurchase handles retrieving a purchase
func (h *AdminHandler) GetPurchase(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	purchase, err := h.adminUC.GetPurchase(c.Request().Context(), purchaseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, purchase)
}

// ListDevices handles listing the device overrides of a purchase
func (h *AdminHandler) ListDevices(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	entries, err := h.adminUC.ListDevices(c.Request().Context(), purchaseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// SetDeviceAccess handles granting or blocking a secondary device
func (h *AdminHandler) SetDeviceAccess(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	fingerprint, ok := fingerprintParam(c)
	if !ok {
		return invalidFingerprintParam(c)
	}

	var req SetDeviceAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device access input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.Describe(err))
	}

	entry, err := h.adminUC.SetDeviceAccess(c.Request().Context(), purchaseID, &usecase.DeviceAccessChange{
		Fingerprint: fingerprint,
		IsBlocked:   req.IsBlocked,
		Note:        req.Note,
		DeviceInfo:  req.DeviceInfo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// RemoveDeviceAccess handles deleting a device override
func (h *AdminHandler) RemoveDeviceAccess(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	fingerprint, ok := fingerprintParam(c)
	if !ok {
		return invalidFingerprintParam(c)
	}

	if err := h.adminUC.RemoveDeviceAccess(c.Request().Context(), purchaseID, fingerprint); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetDeviceLock handles toggling device binding enforcement
func (h *AdminHandler) SetDeviceLock(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	var req SetDeviceLockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device lock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.Describe(err))
	}

	purchase, err := h.adminUC.SetDeviceLock(c.Request().Context(), purchaseID, *req.IsDeviceLocked)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, purchase)
}

// RegisterPrimaryDevice handles binding the primary device of a purchase
func (h *AdminHandler) RegisterPrimaryDevice(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	var req RegisterPrimaryDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid primary device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.Describe(err))
	}

	purchase, err := h.adminUC.RegisterPrimaryDevice(c.Request().Context(), purchaseID, req.Fingerprint, req.DeviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, purchase)
}

// ResetDevices handles clearing the primary device and all overrides
func (h *AdminHandler) ResetDevices(c echo.Context) error {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PURCHASE_ID", "Invalid purchase ID format")
	}

	if err := h.adminUC.ResetDevices(c.Request().Context(), purchaseID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
