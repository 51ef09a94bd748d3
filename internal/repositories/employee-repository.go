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

const employeeSelectFields = `Ssn, Fname, Minit, Lname, BDate, Address, Sex, Salary, Super_ssn, Dno, EmpDate`

type EmployeeRepositoryInterface interface {
	ListEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeListItem, error)
	ListEmployeeOptions(ctx context.Context) ([]dto.EmployeeOption, error)
	FindEmployee(ctx context.Context, ssn string) (*entities.Employee, error)
	CreateEmployee(ctx context.Context, employee entities.Employee) error
	UpdateEmployee(ctx context.Context, ssn string, address string, salary float64, dno int) error
	DeleteEmployee(ctx context.Context, ssn string) error
}

type EmployeeRepository struct {
	logger *zap.Logger
}

func NewEmployeeRepository(logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	err := row.Scan(
		&e.Ssn, &e.Fname, &e.Minit, &e.Lname, &e.BDate, &e.Address,
		&e.Sex, &e.Salary, &e.SuperSsn, &e.Dno, &e.EmpDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	return &e, nil
}

func (r *EmployeeRepository) ListEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]dto.EmployeeListItem, error) {
	query, args, err := EmployeeListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("не удалось собрать запрос списка сотрудников: %w", err)
	}
	r.logger.Debug("ListEmployees", zap.String("sql", query), zap.Any("args", args))

	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]dto.EmployeeListItem, 0)
	for rows.Next() {
		var item dto.EmployeeListItem
		if err := rows.Scan(
			&item.Fname, &item.Lname, &item.Dname,
			&item.Dependents, &item.Projects, &item.TotalHours, &item.Ssn,
		); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки списка сотрудников: %w", err)
		}
		employees = append(employees, item)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) ListEmployeeOptions(ctx context.Context) ([]dto.EmployeeOption, error) {
	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `SELECT Ssn, Fname, Lname FROM Employee ORDER BY Lname, Fname`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]dto.EmployeeOption, 0)
	for rows.Next() {
		var o dto.EmployeeOption
		if err := rows.Scan(&o.Ssn, &o.Fname, &o.Lname); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}

func (r *EmployeeRepository) FindEmployee(ctx context.Context, ssn string) (*entities.Employee, error) {
	db, err := conn(ctx)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM Employee WHERE Ssn = $1`, employeeSelectFields)
	return scanEmployee(db.QueryRow(ctx, query, ssn))
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee entities.Employee) error {
	query, args, err := psql.
		Insert("Employee").
		Columns("Ssn", "Fname", "Minit", "Lname", "BDate", "Address", "Sex", "Salary", "Super_ssn", "Dno", "EmpDate").
		Values(
			employee.Ssn, employee.Fname, employee.Minit, employee.Lname, employee.BDate, employee.Address,
			employee.Sex, employee.Salary, employee.SuperSsn, employee.Dno, employee.EmpDate,
		).
		ToSql()
	if err != nil {
		return err
	}

	err = inRequestTx(ctx, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Warn("CreateEmployee: транзакция откатена", zap.String("ssn", employee.Ssn), zap.Error(err))
		return classifyConstraint(err)
	}
	return nil
}

// UpdateEmployee меняет только адрес, зарплату и отдел.
func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, ssn string, address string, salary float64, dno int) error {
	query, args, err := psql.
		Update("Employee").
		Set("Address", address).
		Set("Salary", salary).
		Set("Dno", dno).
		Where("Ssn = ?", ssn).
		ToSql()
	if err != nil {
		return err
	}

	err = inRequestTx(ctx, func(tx pgx.Tx) error {
		tag, execErr := tx.Exec(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		r.logger.Warn("UpdateEmployee: транзакция откатена", zap.String("ssn", ssn), zap.Error(err))
		return classifyConstraint(err)
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, ssn string) error {
	err := inRequestTx(ctx, func(tx pgx.Tx) error {
		tag, execErr := tx.Exec(ctx, `DELETE FROM Employee WHERE Ssn = $1`, ssn)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		r.logger.Warn("DeleteEmployee: транзакция откатена", zap.String("ssn", ssn), zap.Error(err))
		return classifyConstraint(err)
	}
	return nil
}
