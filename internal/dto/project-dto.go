package dto

import "employee-portal/internal/entities"

type ProjectFilter struct {
	SortBy string `query:"sort_by"`
	Order  string `query:"order"`
}

type ProjectListItem struct {
	Pnumber    int
	Pname      string
	Dname      string
	Headcount  int64
	TotalHours float64
}

type AssignedEmployee struct {
	Fname string
	Lname string
	Hours float64
}

type AssignHoursDTO struct {
	Essn  string `form:"essn"`
	Hours string `form:"hours"`
}

type ProjectListPage struct {
	Username     string
	Projects     []ProjectListItem
	CurrentSort  string
	CurrentOrder string
}

type ProjectDetailsPage struct {
	Username     string
	Project      *entities.Project
	Assigned     []AssignedEmployee
	AllEmployees []EmployeeOption
}
