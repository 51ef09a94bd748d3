package dto

import "employee-portal/internal/entities"

// EmployeeFilter - параметры списка сотрудников и CSV-выгрузки.
type EmployeeFilter struct {
	Search string `query:"search"`
	Dept   string `query:"dept"`
	SortBy string `query:"sort_by"`
	Order  string `query:"order"`
	Format string `query:"format"`
}

type EmployeeListItem struct {
	Fname      string
	Lname      string
	Dname      string
	Dependents int64
	Projects   int64
	TotalHours float64
	Ssn        string
}

type EmployeeOption struct {
	Ssn   string
	Fname string
	Lname string
}

type CreateEmployeeDTO struct {
	Ssn      string `form:"ssn" validate:"required,ssn"`
	Fname    string `form:"fname" validate:"required"`
	Minit    string `form:"minit" validate:"omitempty,max=1"`
	Lname    string `form:"lname" validate:"required"`
	BDate    string `form:"bdate" validate:"isodate"`
	Address  string `form:"address" validate:"required"`
	Sex      string `form:"sex" validate:"required"`
	Salary   string `form:"salary" validate:"required,numeric"`
	SuperSsn string `form:"super_ssn"`
	Dno      string `form:"dno" validate:"required,numeric"`
	EmpDate  string `form:"empdate" validate:"isodate"`
}

type UpdateEmployeeDTO struct {
	Address string `form:"address" validate:"required"`
	Salary  string `form:"salary" validate:"required,numeric"`
	Dno     string `form:"dno" validate:"required,numeric"`
}

type EmployeeListPage struct {
	Username      string
	Employees     []EmployeeListItem
	Departments   []entities.Department
	CurrentSearch string
	CurrentDept   string
	CurrentSort   string
	CurrentOrder  string
}

type EmployeeAddPage struct {
	Username    string
	Form        CreateEmployeeDTO
	Departments []entities.Department
	Supervisors []EmployeeOption
	Error       string
}

type EmployeeEditPage struct {
	Username    string
	Employee    *entities.Employee
	Departments []entities.Department
	Error       string
}
