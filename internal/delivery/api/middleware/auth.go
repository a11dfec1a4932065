// Package middleware contains API-only echo middleware.
package middleware

import (
	"strings"

	"style/internal/delivery/api/response"
	deliverycontext "style/internal/delivery/context"
	"style/internal/domain/constants"
	domainerrors "style/internal/domain/errors"
	"style/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the access guard in front of every private route.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate requires "Authorization: Bearer <token>" and attaches the resolved
// identity to the echo.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(constants.HeaderAuthorization))
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
		}

		user, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// bearerToken extracts the token of a Bearer authorization header. The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, constants.BearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
