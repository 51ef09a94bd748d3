package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runDepartmentRouter(group *echo.Group, departmentService services.DepartmentServiceInterface, logger *zap.Logger) {
	departmentCtrl := controllers.NewDepartmentController(departmentService, logger)
	group.GET("/managers", departmentCtrl.Managers)
}
