package exporter

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/documents"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/storageproxy"
)

// LocalSaver локальное сохранение документа (каталог загрузок)
type LocalSaver interface {
	Put(ctx context.Context, key string, content []byte, contentType string) (*documents.Location, error)
}

// RemoteSaver сохранение документа через storage proxy
type RemoteSaver interface {
	SaveDocument(ctx context.Context, req *storageproxy.SaveRequest) (*storageproxy.SaveResponse, error)
}

// MetricsRecorder учет экспортов
type MetricsRecorder interface {
	IncExport(format, result string)
	IncRemoteSave(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncExport(string, string) {}
func (nopMetrics) IncRemoteSave(string)     {}
