package repositories

import (
	"context"
	"errors"
	"fmt"

	"employee-portal/internal/dto"
	"employee-portal/internal/entities"
	apperrors "employee-portal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProjectRepositoryInterface interface {
	ListProjects(ctx context.Context, filter dto.ProjectFilter) ([]dto.ProjectListItem, error)
	FindProject(ctx context.Context, pno int) (*entities.Project, error)
	ListAssignedEmployees(ctx context.Context, pno int) ([]dto.AssignedEmployee, error)
	AddHours(ctx context.Context, assignment entities.Assignment) error
}

type ProjectRepository struct {
	logger *zap.Logger
}

func NewProjectRepository(logger *zap.Logger) ProjectRepositoryInterface {
	return &ProjectRepository{logger: logger}
}

func (r *ProjectRepository) ListProjects(ctx context.Context, filter dto.ProjectFilter) ([]dto.ProjectListItem, error) {
	query, args, err := ProjectListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("не удалось собрать запрос списка проектов: %w", err)
	}

	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]dto.ProjectListItem, 0)
	for rows.Next() {
		var p dto.ProjectListItem
		if err := rows.Scan(&p.Pnumber, &p.Pname, &p.Dname, &p.Headcount, &p.TotalHours); err != nil {
			return nil, fmt.Errorf("ошибка сканирования проекта: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) FindProject(ctx context.Context, pno int) (*entities.Project, error) {
	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var p entities.Project
	err = db.QueryRow(ctx, `
		SELECT p.Pname, d.Dname, p.Pnumber
		FROM Project p
		JOIN Department d ON p.Dnum = d.Dnumber
		WHERE p.Pnumber = $1`, pno).Scan(&p.Pname, &p.Dname, &p.Pnumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) ListAssignedEmployees(ctx context.Context, pno int) ([]dto.AssignedEmployee, error) {
	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `
		SELECT e.Fname, e.Lname, COALESCE(w.Hours, 0)
		FROM Employee e
		JOIN Works_On w ON e.Ssn = w.Essn
		WHERE w.Pno = $1
		ORDER BY e.Lname, e.Fname`, pno)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assigned := make([]dto.AssignedEmployee, 0)
	for rows.Next() {
		var a dto.AssignedEmployee
		if err := rows.Scan(&a.Fname, &a.Lname, &a.Hours); err != nil {
			return nil, err
		}
		assigned = append(assigned, a)
	}
	return assigned, rows.Err()
}

// AddHours: новая пара (Essn, Pno) вставляется, существующая получает прибавку к часам.
func (r *ProjectRepository) AddHours(ctx context.Context, assignment entities.Assignment) error {
	err := inRequestTx(ctx, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, `
			INSERT INTO Works_On (Essn, Pno, Hours)
			VALUES ($1, $2, $3)
			ON CONFLICT (Essn, Pno)
			DO UPDATE SET Hours = Works_On.Hours + EXCLUDED.Hours`,
			assignment.Essn, assignment.Pno, assignment.Hours)
		return execErr
	})
	if err != nil {
		r.logger.Warn("AddHours: транзакция откатена",
			zap.String("essn", assignment.Essn), zap.Int("pno", assignment.Pno), zap.Error(err))
		return classifyConstraint(err)
	}
	return nil
}
