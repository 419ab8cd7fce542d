package catalog

import "errors"

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = errors.New("catalog: shop not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrBackend возвращается при ошибке backend API
	ErrBackend = errors.New("catalog: backend request failed")
)
