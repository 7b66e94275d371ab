package middleware

import (
	"log/slog"
	"strings"

	"academy/internal/delivery/api/response"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	keyIdentity  = "identity"
	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the caller from the bearer token and checks staff roles.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	roleUC   usecase.RoleUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, roleUC usecase.RoleUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		roleUC:   roleUC,
		logger:   logger,
	}
}

// Authenticate rejects requests whose identity cannot be resolved.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrIdentityUnresolved.WithDetails("authorization header is missing"))
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken.WithDetails("must be a Bearer token"))
		}

		identity, err := m.verifier.Verify(tokenString)
		if err != nil {
			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Token rejected", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		c.Set(keyIdentity, identity)

		return next(c)
	}
}

// RequireRole checks the role directory for the authenticated email.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrIdentityUnresolved)
			}

			allowed, err := m.roleUC.HasRole(c.Request().Context(), identity.Email, requiredRole)
			if err != nil {
				return err
			}

			if !allowed {
				return response.HandleAppError(c, domainerrors.ErrRoleRequired.WithDetails("requires role "+requiredRole.String()))
			}

			return next(c)
		}
	}
}

// GetIdentity returns the identity set by Authenticate.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(keyIdentity).(*entity.Identity)
	if !ok || identity == nil || identity.Email == "" {
		return nil, false
	}

	return identity, true
}
