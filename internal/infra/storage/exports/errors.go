package exports

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись реестра не найдена
	ErrRecordNotFound = errors.New("exports.repository: record not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("exports.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("exports.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("exports.repository: failed to scan row")
)
