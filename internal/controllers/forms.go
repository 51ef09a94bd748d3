package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const missingFieldsMessage = "Error: Please fill in all required fields"

// validationMessage переводит первую ошибку валидатора в текст для формы.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return missingFieldsMessage
	}

	fe := validationErrors[0]
	switch fe.Tag() {
	case "ssn":
		return "Error: SSN must be exactly 9 digits"
	case "isodate":
		return "Error: Dates must use the YYYY-MM-DD format"
	case "numeric":
		if fe.Field() == "Salary" {
			return "Error: Salary must be a number"
		}
		return "Error: Invalid department selected"
	case "max":
		return "Error: Middle initial must be a single letter"
	default:
		return missingFieldsMessage
	}
}
