// Package middleware contains the echo middleware specific to the JSON API.
package middleware

import (
	"strings"

	"recipefinder/internal/delivery/api/response"
	deliverycontext "recipefinder/internal/delivery/context"
	domainerrors "recipefinder/internal/domain/errors"
	"recipefinder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves bearer tokens into caller identities.
type AuthMiddleware struct {
	identity service.IdentityProvider
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Identify attaches the caller's user ID when a bearer token is present.
// Requests without an Authorization header continue anonymously; a malformed
// or rejected token is answered with 401.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		identity, err := m.identity.Verify(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUserID(c, identity.UserID)

		return next(c)
	}
}

// RequireUser rejects anonymous callers. It must be used AFTER Identify.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := GetUserID(c); !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		return next(c)
	}
}

// GetUserID returns the identified caller, if any.
func GetUserID(c echo.Context) (string, bool) {
	userID := deliverycontext.GetUserID(c)

	return userID, userID != ""
}
