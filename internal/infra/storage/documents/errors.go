package documents

import "errors"

var (
	// ErrObjectNotFound возвращается, когда объект с ключом не найден
	ErrObjectNotFound = errors.New("documents.storage: object not found")

	// ErrInvalidKey возвращается для небезопасных или пустых ключей
	ErrInvalidKey = errors.New("documents.storage: invalid object key")

	// ErrWrite возвращается при ошибке записи объекта
	ErrWrite = errors.New("documents.storage: failed to write object")

	// ErrRead возвращается при ошибке чтения объекта
	ErrRead = errors.New("documents.storage: failed to read object")

	// ErrList возвращается при ошибке получения списка объектов
	ErrList = errors.New("documents.storage: failed to list objects")
)
