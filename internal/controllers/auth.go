package controllers

import (
	"errors"
	"net/http"
	"time"

	"employee-portal/internal/dto"
	"employee-portal/internal/services"
	"employee-portal/pkg/config"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/middleware"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	session     config.SessionConfig
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	session config.SessionConfig,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		session:     session,
		logger:      logger,
	}
}

func (ctrl *AuthController) renderLogin(c echo.Context, code int, message string) error {
	return c.Render(code, "login", dto.LoginPage{Error: message})
}

func (ctrl *AuthController) LoginForm(c echo.Context) error {
	return ctrl.renderLogin(c, http.StatusOK, "")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Warn("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.renderLogin(c, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.renderLogin(c, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
	}

	user, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		var httpErr *apperrors.HttpError
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			return ctrl.renderLogin(c, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
		case errors.As(err, &httpErr):
			return ctrl.renderLogin(c, httpErr.Code, httpErr.Message)
		default:
			ctrl.logger.Error("Login: ошибка авторизации", zap.String("username", payload.Username), zap.Error(err))
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
	}

	token, err := ctrl.authService.StartSession(c.Request().Context(), user)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   ctrl.authService.SessionTTLSeconds(),
		HttpOnly: true,
		Secure:   ctrl.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/")
}

// Logout всегда очищает cookie, даже если сессия уже недействительна.
func (ctrl *AuthController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(ctrl.session.CookieName); err == nil && cookie.Value != "" {
		if err := ctrl.authService.EndSession(c.Request().Context(), cookie.Value); err != nil {
			ctrl.logger.Warn("Logout: не удалось удалить сессию", zap.Error(err))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     ctrl.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}
