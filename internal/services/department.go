package services

import (
	"context"
	"strings"

	"employee-portal/internal/dto"
	"employee-portal/internal/repositories"

	"go.uber.org/zap"
)

type DepartmentServiceInterface interface {
	ManagerSummary(ctx context.Context) (*dto.ManagersPage, error)
}

type DepartmentService struct {
	repo   repositories.DepartmentRepositoryInterface
	logger *zap.Logger
}

func NewDepartmentService(repo repositories.DepartmentRepositoryInterface, logger *zap.Logger) DepartmentServiceInterface {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) ManagerSummary(ctx context.Context) (*dto.ManagersPage, error) {
	stats, err := s.repo.ListManagerStats(ctx)
	if err != nil {
		s.logger.Error("ManagerSummary: не удалось получить сводку", zap.Error(err))
		return nil, err
	}

	summaries := make([]dto.DepartmentSummary, 0, len(stats))
	for _, st := range stats {
		summaries = append(summaries, dto.DepartmentSummary{
			Dnumber:       st.Dnumber,
			Dname:         st.Dname,
			ManagerName:   FormatEmployeeName(st.MgrFname.String, st.MgrMinit.String, st.MgrLname.String),
			EmployeeCount: st.EmployeeCount,
			TotalHours:    st.TotalHours,
		})
	}
	return &dto.ManagersPage{Departments: summaries}, nil
}

// FormatEmployeeName: "N/A" без имени или фамилии, "First M. Last" с инициалом, иначе "First Last".
func FormatEmployeeName(fname, minit, lname string) string {
	if fname == "" || lname == "" {
		return "N/A"
	}
	if initial := strings.TrimSpace(minit); initial != "" {
		return fname + " " + initial + ". " + lname
	}
	return fname + " " + lname
}
