package errors

import (
	"errors"
	"fmt"
)

var (
	// Сессия и токены
	ErrInvalidSigningMethod = errors.New("unexpected session token signing method")
	ErrInvalidToken         = errors.New("invalid session token")
	ErrTokenExpired         = errors.New("session token expired")
	ErrSessionNotFound      = errors.New("session not found")

	// Авторизация
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrAccountLocked      = errors.New("Too many failed attempts, try again later")

	// Контекст
	ErrIdentityNotFoundInContext = errors.New("identity not found in request context")

	// Ограничения БД
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrForeignKey      = errors.New("foreign key violation")
	ErrCheckViolation  = errors.New("check constraint violation")
	ErrStillReferenced = errors.New("row is still referenced")

	// Общие
	ErrNotFound   = errors.New("record not found")
	ErrBadRequest = errors.New("bad request")
)

// HttpError несёт код ответа и текст для пользователя; Err уходит только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
