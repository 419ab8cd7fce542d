package list_documents

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/documents/models"
)

type DocumentService interface {
	List(ctx context.Context, prefix string, maxKeys int) (*models.ListResult, error)
	Get(ctx context.Context, key string) (*models.Document, error)
	GetByProtocol(ctx context.Context, protocol string) (*models.ProtocolResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
