package controllers

import (
	"net/http"

	"employee-portal/internal/services"
	"employee-portal/pkg/middleware"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DepartmentController struct {
	departmentService services.DepartmentServiceInterface
	logger            *zap.Logger
}

func NewDepartmentController(departmentService services.DepartmentServiceInterface, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{departmentService: departmentService, logger: logger}
}

func (ctrl *DepartmentController) Managers(c echo.Context) error {
	page, err := ctrl.departmentService.ManagerSummary(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	page.Username = middleware.Username(c.Request().Context())
	return c.Render(http.StatusOK, "managers", page)
}
