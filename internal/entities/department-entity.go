package entities

import "github.com/aarondl/null/v8"

type Department struct {
	Dnumber int    `json:"dnumber"`
	Dname   string `json:"dname"`
}

// DepartmentManagerStats - сырая строка сводки по отделу; поля руководителя пусты, если его нет.
type DepartmentManagerStats struct {
	Dnumber       int
	Dname         string
	MgrFname      null.String
	MgrMinit      null.String
	MgrLname      null.String
	EmployeeCount int64
	TotalHours    float64
}
