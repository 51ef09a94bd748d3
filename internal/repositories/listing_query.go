package repositories

import (
	"strconv"
	"strings"

	"employee-portal/internal/dto"

	sq "github.com/Masterminds/squirrel"
)

// Сортировку нельзя передать параметром, поэтому ORDER BY собирается
// только из значений этих таблиц. Всё остальное уходит в bind-параметры.
var (
	employeeSortColumns = map[string][]string{
		"name":        {"e.Lname", "e.Fname"},
		"total_hours": {"total_hours"},
	}
	projectSortColumns = map[string][]string{
		"pname":       {"p.Pname"},
		"headcount":   {"headcount"},
		"total_hours": {"total_hours"},
	}
	sortDirections = map[string]string{
		"asc":  "ASC",
		"desc": "DESC",
	}
)

const (
	DefaultEmployeeSort = "name"
	DefaultProjectSort  = "pname"
	DefaultOrder        = "asc"
)

// orderByClauses применяет направление к каждой колонке ключа сортировки.
// Неизвестные ключ или направление заменяются значениями по умолчанию.
func orderByClauses(allowed map[string][]string, sortBy, defaultSort, order string) []string {
	columns, ok := allowed[sortBy]
	if !ok {
		columns = allowed[defaultSort]
	}
	direction, ok := sortDirections[strings.ToLower(order)]
	if !ok {
		direction = sortDirections[DefaultOrder]
	}

	clauses := make([]string, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, col+" "+direction)
	}
	return clauses
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// EmployeeListQuery - общий построитель для списка сотрудников и экспорта.
func EmployeeListQuery(filter dto.EmployeeFilter) (string, []interface{}, error) {
	query := psql.
		Select(
			"e.Fname",
			"e.Lname",
			"d.Dname",
			"COALESCE(dep.dep_count, 0) AS num_dependents",
			"COALESCE(wo.proj_count, 0) AS num_projects",
			"COALESCE(wo.total_hours, 0) AS total_hours",
			"e.Ssn",
		).
		From("Employee e").
		Join("Department d ON e.Dno = d.Dnumber").
		LeftJoin("(SELECT Essn, COUNT(*) AS dep_count FROM Dependent GROUP BY Essn) dep ON e.Ssn = dep.Essn").
		LeftJoin("(SELECT Essn, COUNT(*) AS proj_count, SUM(Hours) AS total_hours FROM Works_On GROUP BY Essn) wo ON e.Ssn = wo.Essn")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(sq.Or{
			sq.ILike{"e.Fname": pattern},
			sq.ILike{"e.Lname": pattern},
		})
	}

	if isDigits(filter.Dept) {
		if dno, err := strconv.Atoi(filter.Dept); err == nil {
			query = query.Where(sq.Eq{"e.Dno": dno})
		}
	}

	query = query.OrderBy(orderByClauses(employeeSortColumns, filter.SortBy, DefaultEmployeeSort, filter.Order)...)
	return query.ToSql()
}

// ProjectListQuery - проекты с численностью и суммой часов.
func ProjectListQuery(filter dto.ProjectFilter) (string, []interface{}, error) {
	return psql.
		Select(
			"p.Pnumber",
			"p.Pname",
			"d.Dname",
			"COUNT(w.Essn) AS headcount",
			"COALESCE(SUM(w.Hours), 0) AS total_hours",
		).
		From("Project p").
		Join("Department d ON p.Dnum = d.Dnumber").
		LeftJoin("Works_On w ON p.Pnumber = w.Pno").
		GroupBy("p.Pnumber", "p.Pname", "d.Dname").
		OrderBy(orderByClauses(projectSortColumns, filter.SortBy, DefaultProjectSort, filter.Order)...).
		ToSql()
}
