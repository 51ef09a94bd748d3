package middleware

import (
	"employee-portal/pkg/database/postgresql"

	"github.com/labstack/echo/v4"
)

// RequestConnection открывает слот под соединение запроса и возвращает соединение в пул
// по завершении обработчика, в том числе при ошибке или панике.
func RequestConnection(provider *postgresql.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := provider.Open(c.Request().Context())
			defer postgresql.Release(ctx)

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
