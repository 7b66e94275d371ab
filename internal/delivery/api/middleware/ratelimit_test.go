package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_InvalidRate(t *testing.T) {
	_, err := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true, Rate: "often"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestRateLimitMiddleware_DisabledPassesThrough(t *testing.T) {
	m, err := NewRateLimitMiddleware(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	e := echo.New()
	for range 3 {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, m.Handle(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get(headerRateLimitLimit))
	}
}

func TestRateLimitMiddleware_PerClientIP(t *testing.T) {
	m, err := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{Enabled: true, Rate: "1-H"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	e := echo.New()
	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":5000"
		rec := httptest.NewRecorder()
		require.NoError(t, m.Handle(okHandler)(e.NewContext(req, rec)))

		return rec
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.2").Code)
}
