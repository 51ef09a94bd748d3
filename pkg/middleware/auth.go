package middleware

import (
	"context"
	"net/http"

	"employee-portal/internal/dto"
	"employee-portal/pkg/contextkeys"
	apperrors "employee-portal/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const LoginPath = "/login"

// SessionResolver проверяет токен сессии из cookie.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*dto.Identity, error)
}

type AuthMiddleware struct {
	resolver   SessionResolver
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(resolver SessionResolver, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver:   resolver,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Auth пропускает только запросы с живой сессией, остальных отправляет на страницу входа.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusFound, LoginPath)
		}

		identity, err := m.resolver.ResolveSession(c.Request().Context(), cookie.Value)
		if err != nil {
			m.logger.Debug("AuthMiddleware: сессия отклонена", zap.Error(err))
			return c.Redirect(http.StatusFound, LoginPath)
		}

		c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
		return next(c)
	}
}

func WithIdentity(ctx context.Context, identity *dto.Identity) context.Context {
	return context.WithValue(ctx, contextkeys.IdentityKey, identity)
}

func IdentityFromContext(ctx context.Context) (*dto.Identity, error) {
	identity, ok := ctx.Value(contextkeys.IdentityKey).(*dto.Identity)
	if !ok || identity == nil {
		return nil, apperrors.ErrIdentityNotFoundInContext
	}
	return identity, nil
}

// Username - имя для шапки страниц; пустое, если пользователь не вошёл.
func Username(ctx context.Context) string {
	identity, err := IdentityFromContext(ctx)
	if err != nil {
		return ""
	}
	return identity.Username
}
