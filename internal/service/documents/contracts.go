package documents

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	storage "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/documents"
)

// ObjectStore хранилище документов (S3 или файловая система)
type ObjectStore interface {
	Name() string
	Put(ctx context.Context, key string, content []byte, contentType string) (*storage.Location, error)
	Get(ctx context.Context, key string) (*storage.Object, error)
	List(ctx context.Context, prefix string, maxKeys int) (*storage.Listing, error)
}

// ExportRegistry реестр сохраненных документов
type ExportRegistry interface {
	Create(ctx context.Context, rec *domain.ExportRecord) (*domain.ExportRecord, error)
	ListByProtocol(ctx context.Context, protocol string) ([]*domain.ExportRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.ExportRecord, error)
}

// MetricsRecorder учет сохранений
type MetricsRecorder interface {
	IncStorageSave(backend, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncStorageSave(string, string) {}
