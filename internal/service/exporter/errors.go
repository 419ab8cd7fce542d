package exporter

import (
	"errors"
	"fmt"
)

var (
	// ErrExport общая ошибка экспорта (рендеринг или локальное сохранение)
	ErrExport = errors.New("exporter: export failed")

	// ErrIncompleteBundle возвращается, когда в данных записи нет самой записи
	ErrIncompleteBundle = errors.New("exporter: appointment bundle is incomplete")
)

// Этапы экспорта
const (
	StageRender    = "render"
	StageLocalSave = "local_save"
)

// ExportError ошибка экспорта с указанием этапа.
// Ошибки удаленного сохранения сюда не попадают: они только логируются.
type ExportError struct {
	Stage    string
	Protocol string
	Err      error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%v: %s: protocol=%s: %v", ErrExport, e.Stage, e.Protocol, e.Err)
}

func (e *ExportError) Unwrap() []error {
	return []error{ErrExport, e.Err}
}
