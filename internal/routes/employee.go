package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runEmployeeRouter(group *echo.Group, employeeService services.EmployeeServiceInterface, logger *zap.Logger) {
	employeeCtrl := controllers.NewEmployeeController(employeeService, logger)

	group.GET("/", employeeCtrl.List)
	group.GET("/employee/add", employeeCtrl.AddForm)
	group.POST("/employee/add", employeeCtrl.Add)
	group.GET("/employee/edit/:ssn", employeeCtrl.EditForm)
	group.POST("/employee/edit/:ssn", employeeCtrl.Edit)
	group.POST("/employee/delete/:ssn", employeeCtrl.Delete)
}
