package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	"employee-portal/internal/repositories"
	apperrors "employee-portal/pkg/errors"

	"go.uber.org/zap"
)

type ProjectServiceInterface interface {
	ListProjects(ctx context.Context, filter dto.ProjectFilter) (*dto.ProjectListPage, error)
	GetProjectDetails(ctx context.Context, rawID string) (*dto.ProjectDetailsPage, error)
	AssignHours(ctx context.Context, rawID string, payload dto.AssignHoursDTO) (int, error)
}

type ProjectService struct {
	projectRepo  repositories.ProjectRepositoryInterface
	employeeRepo repositories.EmployeeRepositoryInterface
	logger       *zap.Logger
}

func NewProjectService(
	projectRepo repositories.ProjectRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	logger *zap.Logger,
) ProjectServiceInterface {
	return &ProjectService{
		projectRepo:  projectRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func projectNotFound() error {
	return apperrors.NewHttpError(http.StatusNotFound, "Project not found", apperrors.ErrNotFound, nil)
}

func parseProjectID(rawID string) (int, error) {
	pno, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return 0, projectNotFound()
	}
	return pno, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, filter dto.ProjectFilter) (*dto.ProjectListPage, error) {
	projects, err := s.projectRepo.ListProjects(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &dto.ProjectListPage{
		Projects:     projects,
		CurrentSort:  filter.SortBy,
		CurrentOrder: filter.Order,
	}
	if page.CurrentSort == "" {
		page.CurrentSort = repositories.DefaultProjectSort
	}
	if page.CurrentOrder == "" {
		page.CurrentOrder = repositories.DefaultOrder
	}
	return page, nil
}

func (s *ProjectService) GetProjectDetails(ctx context.Context, rawID string) (*dto.ProjectDetailsPage, error) {
	pno, err := parseProjectID(rawID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProject(ctx, pno)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, projectNotFound()
		}
		return nil, err
	}
	assigned, err := s.projectRepo.ListAssignedEmployees(ctx, pno)
	if err != nil {
		return nil, err
	}
	allEmployees, err := s.employeeRepo.ListEmployeeOptions(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectDetailsPage{
		Project:      project,
		Assigned:     assigned,
		AllEmployees: allEmployees,
	}, nil
}

// AssignHours прибавляет часы сотруднику на проекте и возвращает номер проекта для редиректа.
func (s *ProjectService) AssignHours(ctx context.Context, rawID string, payload dto.AssignHoursDTO) (int, error) {
	pno, err := parseProjectID(rawID)
	if err != nil {
		return 0, err
	}

	essn := strings.TrimSpace(payload.Essn)
	rawHours := strings.TrimSpace(payload.Hours)
	if essn == "" || rawHours == "" {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Missing data", apperrors.ErrBadRequest, nil)
	}

	hours, err := strconv.ParseFloat(rawHours, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Invalid hours", apperrors.ErrBadRequest, nil)
	}

	err = s.projectRepo.AddHours(ctx, entities.Assignment{Essn: essn, Pno: pno, Hours: hours})
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusInternalServerError, "An error occurred while assigning hours", err,
			map[string]interface{}{"essn": essn, "pno": pno})
	}

	s.logger.Info("часы назначены", zap.String("essn", essn), zap.Int("pno", pno), zap.Float64("hours", hours))
	return pno, nil
}
