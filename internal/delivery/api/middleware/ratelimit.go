package middleware

import (
	"log/slog"
	"strconv"

	"academy/config"
	"academy/internal/delivery/api/response"
	domainerrors "academy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Rate limit response headers, matching the ulule/limiter HTTP drivers.
const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
)

// RateLimitMiddleware limits requests per client IP with an in-process store.
type RateLimitMiddleware struct {
	limiter *limiter.Limiter
	enabled bool
	logger  *slog.Logger
}

// NewRateLimitMiddleware builds the limiter from rateLimit.rate, e.g. "60-M".
func NewRateLimitMiddleware(cfg *config.Config, logger *slog.Logger) (*RateLimitMiddleware, error) {
	m := &RateLimitMiddleware{logger: logger}
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return m, nil
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit.Rate)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid rate limit %q", cfg.RateLimit.Rate)
	}

	m.limiter = limiter.New(memory.NewStore(), rate)
	m.enabled = true

	return m, nil
}

// Handle enforces the limit; it is a pass-through when disabled.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.enabled {
		return next
	}

	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limiterCtx, err := m.limiter.Get(ctx, c.RealIP())
		if err != nil {
			// Fail open on store errors.
			m.logger.WarnContext(ctx, "Rate limiter unavailable", slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set(headerRateLimitLimit, strconv.FormatInt(limiterCtx.Limit, 10))
		header.Set(headerRateLimitRemaining, strconv.FormatInt(limiterCtx.Remaining, 10))
		header.Set(headerRateLimitReset, strconv.FormatInt(limiterCtx.Reset, 10))

		if limiterCtx.Reached {
			return response.HandleAppError(c, domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}
