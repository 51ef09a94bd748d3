package controllers

import (
	"errors"
	"net/http"

	"employee-portal/internal/dto"
	"employee-portal/internal/services"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/middleware"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EmployeeController struct {
	employeeService services.EmployeeServiceInterface
	logger          *zap.Logger
}

func NewEmployeeController(employeeService services.EmployeeServiceInterface, logger *zap.Logger) *EmployeeController {
	return &EmployeeController{employeeService: employeeService, logger: logger}
}

func (ctrl *EmployeeController) List(c echo.Context) error {
	var filter dto.EmployeeFilter
	if err := c.Bind(&filter); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Invalid filter", err, nil), ctrl.logger)
	}

	page, err := ctrl.employeeService.ListEmployees(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	page.Username = middleware.Username(c.Request().Context())
	return c.Render(http.StatusOK, "home", page)
}

func (ctrl *EmployeeController) renderAddForm(c echo.Context, code int, form dto.CreateEmployeeDTO, message string) error {
	page, err := ctrl.employeeService.AddEmployeeForm(c.Request().Context(), form, message)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	page.Username = middleware.Username(c.Request().Context())
	return c.Render(code, "employee_add", page)
}

func (ctrl *EmployeeController) AddForm(c echo.Context) error {
	return ctrl.renderAddForm(c, http.StatusOK, dto.CreateEmployeeDTO{}, "")
}

func (ctrl *EmployeeController) Add(c echo.Context) error {
	var payload dto.CreateEmployeeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.renderAddForm(c, http.StatusUnprocessableEntity, payload, missingFieldsMessage)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.renderAddForm(c, http.StatusUnprocessableEntity, payload, validationMessage(err))
	}

	if err := ctrl.employeeService.CreateEmployee(c.Request().Context(), payload); err != nil {
		var httpErr *apperrors.HttpError
		if errors.As(err, &httpErr) {
			if httpErr.Code >= http.StatusInternalServerError {
				ctrl.logger.Error("Add: ошибка создания сотрудника", zap.Error(err), zap.Any("context", httpErr.Context))
			}
			return ctrl.renderAddForm(c, httpErr.Code, payload, httpErr.Message)
		}
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return c.Redirect(http.StatusFound, "/")
}

// renderEditForm перечитывает строку сотрудника; если её нет, отправляет на главную.
func (ctrl *EmployeeController) renderEditForm(c echo.Context, code int, ssn, message string) error {
	page, err := ctrl.employeeService.EditEmployeeForm(c.Request().Context(), ssn, message)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Redirect(http.StatusFound, "/")
		}
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	page.Username = middleware.Username(c.Request().Context())
	return c.Render(code, "employee_edit", page)
}

func (ctrl *EmployeeController) EditForm(c echo.Context) error {
	return ctrl.renderEditForm(c, http.StatusOK, c.Param("ssn"), "")
}

func (ctrl *EmployeeController) Edit(c echo.Context) error {
	ssn := c.Param("ssn")

	var payload dto.UpdateEmployeeDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.renderEditForm(c, http.StatusUnprocessableEntity, ssn, missingFieldsMessage)
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.renderEditForm(c, http.StatusUnprocessableEntity, ssn, validationMessage(err))
	}

	if err := ctrl.employeeService.UpdateEmployee(c.Request().Context(), ssn, payload); err != nil {
		return ctrl.mutationFailed(c, ssn, err)
	}
	return c.Redirect(http.StatusFound, "/")
}

func (ctrl *EmployeeController) Delete(c echo.Context) error {
	ssn := c.Param("ssn")
	if err := ctrl.employeeService.DeleteEmployee(c.Request().Context(), ssn); err != nil {
		return ctrl.mutationFailed(c, ssn, err)
	}
	return c.Redirect(http.StatusFound, "/")
}

func (ctrl *EmployeeController) mutationFailed(c echo.Context, ssn string, err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return c.Redirect(http.StatusFound, "/")
	}
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			ctrl.logger.Error("ошибка изменения сотрудника", zap.String("ssn", ssn), zap.Error(err))
		}
		return ctrl.renderEditForm(c, httpErr.Code, ssn, httpErr.Message)
	}
	return utils.ErrorResponse(c, err, ctrl.logger)
}
