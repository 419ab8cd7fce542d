package export_document

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/documents/models"
)

type DocumentService interface {
	Save(ctx context.Context, req *models.SaveRequest) (*models.SaveResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
