// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var ssnRegex = regexp.MustCompile(`^\d{9}$`)

// RegisterCustomValidations регистрирует правила для форм сотрудников.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("ssn", isSSN); err != nil {
		return err
	}
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		return err
	}
	return nil
}

func isSSN(fl validator.FieldLevel) bool {
	return ssnRegex.MatchString(fl.Field().String())
}

// Пустая строка допустима: обязательность задаётся тегом required.
func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
