package repositories

import (
	"context"

	"employee-portal/internal/entities"

	"go.uber.org/zap"
)

type DepartmentRepositoryInterface interface {
	ListDepartments(ctx context.Context) ([]entities.Department, error)
	ListManagerStats(ctx context.Context) ([]entities.DepartmentManagerStats, error)
}

type DepartmentRepository struct {
	logger *zap.Logger
}

func NewDepartmentRepository(logger *zap.Logger) DepartmentRepositoryInterface {
	return &DepartmentRepository{logger: logger}
}

func (r *DepartmentRepository) ListDepartments(ctx context.Context) ([]entities.Department, error) {
	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `SELECT Dnumber, Dname FROM Department ORDER BY Dname`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]entities.Department, 0)
	for rows.Next() {
		var d entities.Department
		if err := rows.Scan(&d.Dnumber, &d.Dname); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// ListManagerStats: руководитель отдела (может отсутствовать), число сотрудников и их часы.
func (r *DepartmentRepository) ListManagerStats(ctx context.Context) ([]entities.DepartmentManagerStats, error) {
	const query = `
		SELECT
			d.Dnumber,
			d.Dname,
			m.Fname,
			m.Minit,
			m.Lname,
			COUNT(DISTINCT e.Ssn) AS employee_count,
			COALESCE(SUM(w.Hours), 0) AS total_hours
		FROM Department d
		LEFT JOIN Employee m ON d.Mgr_ssn = m.Ssn
		LEFT JOIN Employee e ON d.Dnumber = e.Dno
		LEFT JOIN Works_On w ON e.Ssn = w.Essn
		GROUP BY d.Dnumber, d.Dname, m.Fname, m.Minit, m.Lname
		ORDER BY d.Dname`

	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query)
	if err != nil {
		r.logger.Error("ListManagerStats: ошибка запроса", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stats := make([]entities.DepartmentManagerStats, 0)
	for rows.Next() {
		var s entities.DepartmentManagerStats
		if err := rows.Scan(
			&s.Dnumber, &s.Dname, &s.MgrFname, &s.MgrMinit, &s.MgrLname,
			&s.EmployeeCount, &s.TotalHours,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
