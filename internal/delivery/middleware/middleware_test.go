package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLogger(ctx)
		require.NotNil(t, reqLogger)
		reqLogger.Info("inside handler")

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", deliverycontext.GetRequestID(c))
	assert.Contains(t, buf.String(), "request_id=req-42")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware_OnlyInDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/device/validate", nil), httptest.NewRecorder())

		err := m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusTeapot)
		})(c)
		require.NoError(t, err)

		if debug {
			assert.Contains(t, buf.String(), "HTTP Request")
			assert.Contains(t, buf.String(), "status=418")
		} else {
			assert.Empty(t, buf.String())
		}
	}
}
