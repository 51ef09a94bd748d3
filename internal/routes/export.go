package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runExportRouter(group *echo.Group, employeeService services.EmployeeServiceInterface, logger *zap.Logger) {
	exportCtrl := controllers.NewExportController(employeeService, logger)
	group.GET("/export", exportCtrl.Export)
}
