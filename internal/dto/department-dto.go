package dto

// DepartmentSummary - строка сводки по руководителям отделов.
type DepartmentSummary struct {
	Dnumber       int
	Dname         string
	ManagerName   string
	EmployeeCount int64
	TotalHours    float64
}

type ManagersPage struct {
	Username    string
	Departments []DepartmentSummary
}
