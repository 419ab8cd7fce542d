package gateway

import "errors"

var (
	// ErrNotConfigured возвращается, когда URL шлюза не задан
	ErrNotConfigured = errors.New("gateway client: gateway url is not configured")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("gateway client: internal error")
)
