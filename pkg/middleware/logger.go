// pkg/middleware/logger.go

package middleware

import (
	"context"

	"employee-portal/pkg/contextkeys"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InjectLogger кладёт в контекст запроса логгер с методом и путём.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqLogger := logger.With(
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)
			ctx := context.WithValue(c.Request().Context(), contextkeys.LoggerKey, reqLogger)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func LoggerFromContext(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(contextkeys.LoggerKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}
