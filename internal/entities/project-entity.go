package entities

// Project вместе с названием отдела-владельца.
type Project struct {
	Pnumber int    `json:"pnumber"`
	Pname   string `json:"pname"`
	Dname   string `json:"dname"`
}

// Assignment - строка Works_On.
type Assignment struct {
	Essn  string  `json:"essn"`
	Pno   int     `json:"pno"`
	Hours float64 `json:"hours"`
}
