package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse отдаёт ошибку простым текстом. Внутренние детали пишутся только в лог.
// Если в контексте есть логгер запроса, пишем через него, чтобы в записи были метод и путь.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	logger = middleware.LoggerFromContext(c.Request().Context(), logger)

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.String(httpErr.Code, httpErr.Message)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", e.Field(), e.Tag()))
		}
		return c.String(http.StatusBadRequest, "Validation error: "+strings.Join(msgs, "; "))
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return c.String(echoErr.Code, fmt.Sprint(echoErr.Message))
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return c.String(http.StatusNotFound, "Not found")
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.String(http.StatusInternalServerError, "Internal server error")
}

// HTTPErrorHandler подключается как echo.HTTPErrorHandler.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			logger.Warn("ошибка после отправки ответа", zap.Error(err), zap.String("uri", c.Request().RequestURI))
			return
		}
		if respErr := ErrorResponse(c, err, logger); respErr != nil {
			logger.Error("не удалось отправить ответ с ошибкой", zap.Error(respErr))
		}
	}
}
