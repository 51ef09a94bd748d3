package controllers

import (
	"fmt"
	"net/http"

	"employee-portal/internal/dto"
	"employee-portal/internal/services"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/middleware"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProjectController struct {
	projectService services.ProjectServiceInterface
	logger         *zap.Logger
}

func NewProjectController(projectService services.ProjectServiceInterface, logger *zap.Logger) *ProjectController {
	return &ProjectController{projectService: projectService, logger: logger}
}

func (ctrl *ProjectController) List(c echo.Context) error {
	var filter dto.ProjectFilter
	if err := c.Bind(&filter); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Invalid filter", err, nil), ctrl.logger)
	}

	page, err := ctrl.projectService.ListProjects(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	page.Username = middleware.Username(c.Request().Context())
	return c.Render(http.StatusOK, "projects", page)
}

func (ctrl *ProjectController) Details(c echo.Context) error {
	page, err := ctrl.projectService.GetProjectDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	page.Username = middleware.Username(c.Request().Context())
	return c.Render(http.StatusOK, "project_details", page)
}

func (ctrl *ProjectController) Assign(c echo.Context) error {
	payload := dto.AssignHoursDTO{
		Essn:  c.FormValue("essn"),
		Hours: c.FormValue("hours"),
	}

	pno, err := ctrl.projectService.AssignHours(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.Redirect(http.StatusFound, fmt.Sprintf("/project/%d", pno))
}
