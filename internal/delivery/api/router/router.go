// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"academy/config"
	"academy/internal/delivery/api/middleware"
	"academy/internal/delivery/api/router/handler"
	"academy/internal/domain/entity"
	"academy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.PrometheusMetrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metrics             *metrics.PrometheusMetrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Streaming-time device checks
	deviceGroup := e.Group("/device")
	deviceGroup.Use(r.rateLimitMiddleware.Handle)
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("/validate", r.deviceHandler.ValidateDevice)
		deviceGroup.POST("/fingerprint", r.deviceHandler.ComputeFingerprint)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.rateLimitMiddleware.Handle)
	apiV1.Use(r.authMiddleware.Authenticate)

	// Purchase and device administration (requires admin role)
	purchasesGroup := apiV1.Group("/admin/purchases/:id")
	purchasesGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		purchasesGroup.GET("", r.adminHandler.GetPurchase)
		purchasesGroup.GET("/devices", r.adminHandler.ListDevices)
		purchasesGroup.DELETE("/devices", r.adminHandler.ResetDevices)
		purchasesGroup.PUT("/devices/:fingerprint", r.adminHandler.SetDeviceAccess)
		purchasesGroup.DELETE("/devices/:fingerprint", r.adminHandler.RemoveDeviceAccess)
		purchasesGroup.PUT("/lock", r.adminHandler.SetDeviceLock)
		purchasesGroup.POST("/primary-device", r.adminHandler.RegisterPrimaryDevice)
	}
}
