package entities

import "github.com/aarondl/null/v8"

// Employee - строка таблицы Employee. Схема принадлежит внешней БД.
type Employee struct {
	Ssn      string       `json:"ssn"`
	Fname    string       `json:"fname"`
	Minit    null.String  `json:"minit"`
	Lname    string       `json:"lname"`
	BDate    null.Time    `json:"bdate"`
	Address  null.String  `json:"address"`
	Sex      null.String  `json:"sex"`
	Salary   null.Float64 `json:"salary"`
	SuperSsn null.String  `json:"super_ssn"`
	Dno      int          `json:"dno"`
	EmpDate  null.Time    `json:"empdate"`
}
