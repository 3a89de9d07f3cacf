package middleware

import (
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes that require a valid bearer token.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accountUC usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accountUC: accountUC}
}

// Authenticate validates the Authorization bearer token and resolves the
// account it was minted for. The account is stored on the echo context for
// handlers downstream.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrTokenInvalid.WrapMessage("authorization header must be a bearer token")
		}

		account, err := m.accountUC.ValidateToken(c.Request().Context(), tokenString)
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyAccount), account)

		return next(c)
	}
}

// AccountFromContext retrieves the authenticated account placed on the echo
// context by Authenticate. Returns nil when the route is not guarded.
func AccountFromContext(c echo.Context) *entity.Account {
	account, ok := c.Get(string(deliverycontext.KeyAccount)).(*entity.Account)
	if !ok {
		return nil
	}

	return account
}
