package routes

import (
	"employee-portal/internal/controllers"
	"employee-portal/internal/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runProjectRouter(group *echo.Group, projectService services.ProjectServiceInterface, logger *zap.Logger) {
	projectCtrl := controllers.NewProjectController(projectService, logger)

	group.GET("/projects", projectCtrl.List)
	group.GET("/project/:id", projectCtrl.Details)
	group.POST("/project/:id/assign", projectCtrl.Assign)
}
