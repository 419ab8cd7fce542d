package create_appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrBackend возвращается, когда backend API ответил ошибкой или недоступен
	ErrBackend = errors.New("create_appointment: backend request failed")

	// ErrCustomerConflict возвращается, когда backend сообщил о дубле CPF, но клиент не найден повторным поиском
	ErrCustomerConflict = errors.New("create_appointment: national id already registered but customer not found")
)

// ValidationError ошибка валидации конкретного поля формы
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ConflictError дубль CPF, который не удалось разрешить
type ConflictError struct {
	ShopID     int64
	NationalID string
	Message    string // сообщение backend при создании клиента
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: shop=%d, backend message: %s", ErrCustomerConflict, e.ShopID, e.Message)
}

func (e *ConflictError) Unwrap() error {
	return ErrCustomerConflict
}
