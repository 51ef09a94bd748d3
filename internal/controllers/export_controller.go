package controllers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"employee-portal/internal/dto"
	"employee-portal/internal/services"
	apperrors "employee-portal/pkg/errors"
	"employee-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var exportHeaders = []string{"First Name", "Last Name", "Department", "Dependents", "Projects", "Total Hours"}

type ExportController struct {
	employeeService services.EmployeeServiceInterface
	logger          *zap.Logger
}

func NewExportController(employeeService services.EmployeeServiceInterface, logger *zap.Logger) *ExportController {
	return &ExportController{employeeService: employeeService, logger: logger}
}

// Export выгружает тот же список, что и главная страница, с теми же фильтрами.
func (ctrl *ExportController) Export(c echo.Context) error {
	var filter dto.EmployeeFilter
	if err := c.Bind(&filter); err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "Invalid filter", err, nil), ctrl.logger)
	}
	ctrl.logger.Debug("Запрос на выгрузку сотрудников", zap.Any("filter", filter))

	rows, err := ctrl.employeeService.ExportEmployees(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if strings.EqualFold(filter.Format, "xlsx") {
		return ctrl.respondWithXLSX(c, rows)
	}
	return ctrl.respondWithCSV(c, rows)
}

func exportRow(item dto.EmployeeListItem) []string {
	return []string{
		item.Fname,
		item.Lname,
		item.Dname,
		strconv.FormatInt(item.Dependents, 10),
		strconv.FormatInt(item.Projects, 10),
		strconv.FormatFloat(item.TotalHours, 'f', 1, 64),
	}
}

func (ctrl *ExportController) respondWithCSV(c echo.Context, rows []dto.EmployeeListItem) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment;filename=employee_list.csv")
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write(exportHeaders); err != nil {
		return err
	}
	for _, item := range rows {
		if err := w.Write(exportRow(item)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (ctrl *ExportController) respondWithXLSX(c echo.Context, rows []dto.EmployeeListItem) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Employees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{item.Fname, item.Lname, item.Dname, item.Dependents, item.Projects, item.TotalHours}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "C", 20)

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment;filename=employee_list.xlsx")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
