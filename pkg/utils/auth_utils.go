package utils

import (
	"errors"
	"fmt"

	apperrors "employee-portal/pkg/errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost - стоимость bcrypt для хешей app_user.
const PasswordCost = bcrypt.DefaultCost

var ErrEmptyPassword = errors.New("password must not be empty")

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePasswords возвращает ErrInvalidCredentials при несовпадении пароля;
// битый хеш в базе отдаётся как есть, чтобы его было видно в логе.
func ComparePasswords(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperrors.ErrInvalidCredentials
	}
	return err
}

// FormValidator подключает validator/v10 к echo.Validator для c.Validate.
type FormValidator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *FormValidator {
	return &FormValidator{validate: v}
}

func (fv *FormValidator) Validate(form interface{}) error {
	return fv.validate.Struct(form)
}
