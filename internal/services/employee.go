package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/internal/repositories"
	apperrors "employee-portal/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

const deleteReferencedMessage = "Cannot delete %s: They are still assigned to projects, have dependents listed, " +
	"or are a manager/supervisor. Please remove these associations first."

type EmployeeServiceInterface interface {
	ListEmployees(ctx context.Context, filter dto.EmployeeFilter) (*dto.EmployeeListPage, error)
	ExportEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeListItem, error)
	AddEmployeeForm(ctx context.Context, form dto.CreateEmployeeDTO, errMsg string) (*dto.EmployeeAddPage, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) error
	EditEmployeeForm(ctx context.Context, ssn string, errMsg string) (*dto.EmployeeEditPage, error)
	UpdateEmployee(ctx context.Context, ssn string, payload dto.UpdateEmployeeDTO) error
	DeleteEmployee(ctx context.Context, ssn string) error
}

type EmployeeService struct {
	employeeRepo   repositories.EmployeeRepositoryInterface
	departmentRepo repositories.DepartmentRepositoryInterface
	logger         *zap.Logger
}

func NewEmployeeService(
	employeeRepo repositories.EmployeeRepositoryInterface,
	departmentRepo repositories.DepartmentRepositoryInterface,
	logger *zap.Logger,
) EmployeeServiceInterface {
	return &EmployeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (s *EmployeeService) ListEmployees(ctx context.Context, filter dto.EmployeeFilter) (*dto.EmployeeListPage, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &dto.EmployeeListPage{
		Employees:     employees,
		Departments:   departments,
		CurrentSearch: strings.TrimSpace(filter.Search),
		CurrentDept:   filter.Dept,
		CurrentSort:   filter.SortBy,
		CurrentOrder:  filter.Order,
	}
	if page.CurrentSort == "" {
		page.CurrentSort = repositories.DefaultEmployeeSort
	}
	if page.CurrentOrder == "" {
		page.CurrentOrder = repositories.DefaultOrder
	}
	return page, nil
}

func (s *EmployeeService) ExportEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeListItem, error) {
	return s.employeeRepo.ListEmployees(ctx, filter)
}

func (s *EmployeeService) AddEmployeeForm(ctx context.Context, form dto.CreateEmployeeDTO, errMsg string) (*dto.EmployeeAddPage, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	supervisors, err := s.employeeRepo.ListEmployeeOptions(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeAddPage{
		Form:        form,
		Departments: departments,
		Supervisors: supervisors,
		Error:       errMsg,
	}, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) error {
	employee, err := employeeFromForm(payload)
	if err != nil {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, err.Error(), nil, nil)
	}

	err = s.employeeRepo.CreateEmployee(ctx, *employee)
	switch {
	case err == nil:
		s.logger.Info("сотрудник создан", zap.String("ssn", employee.Ssn))
		return nil
	case errors.Is(err, apperrors.ErrDuplicateKey):
		return apperrors.NewHttpError(http.StatusConflict, fmt.Sprintf("Error: SSN %s already exists", employee.Ssn), err, nil)
	case errors.Is(err, apperrors.ErrForeignKey):
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Error: Invalid department or supervisor selected", err, nil)
	case errors.Is(err, apperrors.ErrCheckViolation):
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Error: Invalid sex value", err, nil)
	default:
		return apperrors.NewHttpError(http.StatusInternalServerError, "An error occurred while adding the employee", err,
			map[string]interface{}{"ssn": employee.Ssn})
	}
}

func (s *EmployeeService) EditEmployeeForm(ctx context.Context, ssn string, errMsg string) (*dto.EmployeeEditPage, error) {
	employee, err := s.employeeRepo.FindEmployee(ctx, ssn)
	if err != nil {
		return nil, err
	}
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EmployeeEditPage{
		Employee:    employee,
		Departments: departments,
		Error:       errMsg,
	}, nil
}

// UpdateEmployee: через эту форму меняются только адрес, зарплата и отдел.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, ssn string, payload dto.UpdateEmployeeDTO) error {
	salary, err := strconv.ParseFloat(strings.TrimSpace(payload.Salary), 64)
	if err != nil {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Error: Salary must be a number.", nil, nil)
	}
	dno, err := strconv.Atoi(strings.TrimSpace(payload.Dno))
	if err != nil {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Error: Invalid department selected.", nil, nil)
	}

	err = s.employeeRepo.UpdateEmployee(ctx, ssn, strings.TrimSpace(payload.Address), salary, dno)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, apperrors.ErrForeignKey):
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "Error: Invalid department selected.", err, nil)
	default:
		return apperrors.NewHttpError(http.StatusInternalServerError, "An error occurred while updating the employee.", err,
			map[string]interface{}{"ssn": ssn})
	}
}

// DeleteEmployee не удаляет сотрудника, на которого ещё есть ссылки.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, ssn string) error {
	err := s.employeeRepo.DeleteEmployee(ctx, ssn)
	switch {
	case err == nil:
		s.logger.Info("сотрудник удалён", zap.String("ssn", ssn))
		return nil
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, apperrors.ErrForeignKey), errors.Is(err, apperrors.ErrStillReferenced):
		name := "This employee"
		if employee, findErr := s.employeeRepo.FindEmployee(ctx, ssn); findErr == nil {
			name = employee.Fname + " " + employee.Lname
		}
		return apperrors.NewHttpError(http.StatusConflict, fmt.Sprintf(deleteReferencedMessage, name), err, nil)
	default:
		return apperrors.NewHttpError(http.StatusInternalServerError, "An unexpected error occurred while deleting the employee.", err,
			map[string]interface{}{"ssn": ssn})
	}
}

// employeeFromForm приводит строки формы к типам столбцов. Пустое отчество хранится как " ".
func employeeFromForm(payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(payload.Salary), 64)
	if err != nil {
		return nil, errors.New("Error: Salary must be a number")
	}
	dno, err := strconv.Atoi(strings.TrimSpace(payload.Dno))
	if err != nil {
		return nil, errors.New("Error: Invalid department or supervisor selected")
	}
	bdate, err := parseOptionalDate(payload.BDate)
	if err != nil {
		return nil, errors.New("Error: Invalid birth date")
	}
	empdate, err := parseOptionalDate(payload.EmpDate)
	if err != nil {
		return nil, errors.New("Error: Invalid hire date")
	}

	minit := strings.TrimSpace(payload.Minit)
	if minit == "" {
		minit = " "
	}

	employee := &entities.Employee{
		Ssn:     strings.TrimSpace(payload.Ssn),
		Fname:   strings.TrimSpace(payload.Fname),
		Minit:   null.StringFrom(minit),
		Lname:   strings.TrimSpace(payload.Lname),
		BDate:   bdate,
		Address: null.StringFrom(strings.TrimSpace(payload.Address)),
		Sex:     null.StringFrom(payload.Sex),
		Salary:  null.Float64From(salary),
		Dno:     dno,
		EmpDate: empdate,
	}
	if superSsn := strings.TrimSpace(payload.SuperSsn); superSsn != "" {
		employee.SuperSsn = null.StringFrom(superSsn)
	}
	return employee, nil
}

func parseOptionalDate(value string) (null.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}
