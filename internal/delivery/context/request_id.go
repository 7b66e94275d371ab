// Package context carries the request ID and the request-scoped logger between
// the echo layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContextKey string

const (
	// KeyRequestID stores the request ID on echo.Context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the request-scoped logger on context.Context.
	KeyLogger ContextKey = "logger"

	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the ID set by the request ID middleware, or a fresh UUID
// for responses written outside it.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault lets use cases and repositories log with the request ID
// when called from a handler and with their own logger otherwise.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
