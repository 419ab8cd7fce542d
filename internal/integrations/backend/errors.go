package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrBackend общая ошибка обращения к backend API (не-2xx ответ или сетевая ошибка)
	ErrBackend = errors.New("backend client: request failed")

	// ErrNotFound возвращается при ответе 404
	ErrNotFound = errors.New("backend client: resource not found")

	// ErrInvalidResponse возвращается, когда тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("backend client: invalid response")
)

// Error ошибка backend API с кодом статуса и сообщением сервера.
// StatusCode == 0 означает, что ответ не был получен (сеть, таймаут, отмена контекста).
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("backend client: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("backend client: %s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() []error {
	errs := []error{ErrBackend}
	if e.StatusCode == http.StatusNotFound {
		errs = append(errs, ErrNotFound)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Message возвращает сообщение сервера из ошибки backend, если оно есть
func Message(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}
