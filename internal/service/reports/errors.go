package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("reports: invalid period")

	// ErrBackend возвращается при ошибке получения записей
	ErrBackend = errors.New("reports: backend failure")

	// ErrBuild возвращается при ошибке формирования файла
	ErrBuild = errors.New("reports: failed to build spreadsheet")
)
