package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/services"
	"employee-portal/pkg/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runAuthRouter(e *echo.Echo, authService services.AuthServiceInterface, session config.SessionConfig, logger *zap.Logger) {
	authCtrl := controllers.NewAuthController(authService, session, logger)

	e.GET("/login", authCtrl.LoginForm)
	e.POST("/login", authCtrl.Login)
	e.GET("/logout", authCtrl.Logout)
}
