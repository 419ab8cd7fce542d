package documents

import "errors"

var (
	// ErrInvalidInput возвращается при неполном или небезопасном запросе
	ErrInvalidInput = errors.New("documents service: invalid input")

	// ErrUnsafeName возвращается, когда протокол или имя файла не годятся для ключа хранилища.
	// Всегда сопровождается ErrInvalidInput
	ErrUnsafeName = errors.New("documents service: unsafe protocol or file name")

	// ErrDocumentNotFound возвращается, когда документ не найден
	ErrDocumentNotFound = errors.New("documents service: document not found")

	// ErrStorage возвращается, когда документ не удалось сохранить ни в одно хранилище
	ErrStorage = errors.New("documents service: storage failure")

	// ErrRegistryDisabled возвращается, когда реестр сохранений не настроен
	ErrRegistryDisabled = errors.New("documents service: export registry is disabled")
)
