package storageproxy

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("storageproxy client: internal error")

	// ErrRejected возвращается, когда прокси отклонил документ (400)
	ErrRejected = errors.New("storageproxy client: document rejected")

	// ErrInvalidResponse возвращается при некорректном ответе прокси
	ErrInvalidResponse = errors.New("storageproxy client: invalid response")

	// ErrNotSaved возвращается, когда прокси ответил sucesso=false
	ErrNotSaved = errors.New("storageproxy client: document not saved")
)
