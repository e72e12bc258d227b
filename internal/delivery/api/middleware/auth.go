package middleware

import (
	"strings"

	deliverycontext "reportsys/internal/delivery/context"
	"reportsys/internal/domain/entity"
	domainerrors "reportsys/internal/domain/errors"
	"reportsys/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer tokens and authorizes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("token must be a Bearer token")
		}

		principal, err := m.tokenSvc.Parse(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage(err.Error())
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole only lets principals of one of roles through.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}
